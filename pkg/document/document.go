package document

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ariaml/ariaml-go/pkg/appearance"
	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/logger"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
)

// DefaultContext is the @context set on definitions that do not declare one.
var DefaultContext = []any{"https://schema.org", "https://ariaml.com/ns/"}

// DefaultType is the @type set on definitions that do not declare one.
const DefaultType = "WebPage"

// Document is the request-scoped model of an AriaML response.
// It is not safe for concurrent use and must not outlive its request.
type Document struct {
	log        *slog.Logger
	def        *definition.Tree
	styles     *appearance.Registry
	ledger     *Ledger
	spaces     map[Namespace]Consumable
	polyfill   string
	root       string
	singletons []string
	mode       negotiate.Mode
	state      State
	wrapped    bool
}

// New creates a document around def. A nil def starts empty.
// @context and @type are set when absent.
func New(def *definition.Tree, opts ...Option) *Document {
	if def == nil {
		def = definition.New()
	}
	if !def.HasKey("@context") {
		def.Set("@context", slices.Clone(DefaultContext))
	}
	if !def.HasKey("@type") {
		def.Set("@type", DefaultType)
	}

	d := &Document{
		log:        logger.NewNope(),
		def:        def,
		styles:     appearance.New(),
		ledger:     NewLedger(),
		polyfill:   DefaultPolyfill,
		singletons: DefaultLinkSingletons,
		mode:       negotiate.ModeFull,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.spaces = map[Namespace]Consumable{
		Definition: definitionSpace{tree: d.def},
		Appearance: appearanceSpace{reg: d.styles},
	}
	return d
}

// Definition returns the underlying definition tree.
func (d *Document) Definition() *definition.Tree { return d.def }

// Appearance returns the underlying appearance registry.
func (d *Document) Appearance() *appearance.Registry { return d.styles }

// Ledger returns the consumption ledger.
func (d *Document) Ledger() *Ledger { return d.ledger }

// Set stores v at the dotted path of the definition.
func (d *Document) Set(path string, v any) *Document {
	d.def.Set(path, v)
	return d
}

// Get returns the definition value at path, or def when missing.
func (d *Document) Get(path string, def any) any { return d.def.Get(path, def) }

// Has reports whether the definition holds path.
func (d *Document) Has(path string) bool { return d.def.Has(path) }

// Remove deletes the definition value at path.
func (d *Document) Remove(path string) *Document {
	d.def.Remove(path)
	return d
}

// AddStyle registers a style or resource declaration in group.
// Use appearance.Ungrouped for the implicit group.
func (d *Document) AddStyle(attrs attr.Attrs, group string) *Document {
	d.styles.Add(attrs, group)
	return d
}

// Mode returns the render mode.
func (d *Document) Mode() negotiate.Mode { return d.mode }

// SetMode changes the render mode. It has no effect on an already opened root.
func (d *Document) SetMode(m negotiate.Mode) { d.mode = m }

// IsFragment reports whether the document renders as a navigation fragment.
func (d *Document) IsFragment() bool { return d.mode == negotiate.ModeFragment }

// ExpectsHTML reports whether the document renders inside a full HTML page.
func (d *Document) ExpectsHTML() bool { return d.mode == negotiate.ModeFull }

// Polyfill returns the polyfill script src.
func (d *Document) Polyfill() string { return d.polyfill }

// Consume serializes the keys of ns that were not emitted yet and records
// them as emitted. A nil keys slice selects every key present in ns at call
// time. Keys absent from ns are skipped and stay claimable. Keys whose values
// cannot be serialized are left out of the output and reported in the error
// alongside whatever did serialize; they stay consumed.
func (d *Document) Consume(ns Namespace, keys []string, indent int) (string, error) {
	space, ok := d.spaces[ns]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}
	if keys == nil {
		keys = space.CurrentKeys()
	}

	present := make([]string, 0, len(keys))
	for _, k := range keys {
		if space.Has(k) {
			present = append(present, k)
		}
	}
	batch := d.ledger.Claim(ns, present)

	d.log.Debug("consume",
		slog.String("namespace", string(ns)),
		slog.Int("requested", len(keys)),
		slog.Int("emitted", len(batch)),
		slog.Int("skipped", len(keys)-len(batch)),
	)

	out, err := space.Render(batch, indent)
	if err != nil {
		return out, fmt.Errorf("render %s: %w", ns, err)
	}
	return out, nil
}

// ConsumeDefinition returns the JSON-LD of the given definition keys that were
// not emitted yet. Without keys, every remaining key is emitted.
func (d *Document) ConsumeDefinition(keys ...string) string {
	return d.ConsumeDefinitionIndent(0, keys...)
}

// ConsumeDefinitionIndent is ConsumeDefinition with every line prefixed by indent tabs.
func (d *Document) ConsumeDefinitionIndent(indent int, keys ...string) string {
	return d.consumeOrOmit(Definition, keys, indent)
}

// ConsumeAppearance returns the style tags of the given groups that were not
// emitted yet. Without groups, every remaining group is emitted.
func (d *Document) ConsumeAppearance(groups ...string) string {
	return d.ConsumeAppearanceIndent(0, groups...)
}

// ConsumeAppearanceIndent is ConsumeAppearance with every tag prefixed by indent tabs.
func (d *Document) ConsumeAppearanceIndent(indent int, groups ...string) string {
	return d.consumeOrOmit(Appearance, groups, indent)
}

// consumeOrOmit logs values that fail to serialize and returns the rest.
// The failing keys stay consumed.
func (d *Document) consumeOrOmit(ns Namespace, keys []string, indent int) string {
	out, err := d.Consume(ns, keys, indent)
	if err != nil {
		d.logConsumeError(ns, err)
	}
	return out
}

func (d *Document) logConsumeError(ns Namespace, err error) {
	d.log.Error("consume failed",
		slog.String("namespace", string(ns)),
		slog.Any("error", err),
	)
}
