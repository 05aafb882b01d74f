package document

import (
	"errors"
	"fmt"

	"github.com/ariaml/ariaml-go/pkg/appearance"
	"github.com/ariaml/ariaml-go/pkg/definition"
)

// Consumable is a key space the consume protocol can extract batches from.
type Consumable interface {
	// CurrentKeys returns the keys present at call time, in order.
	CurrentKeys() []string
	// Has reports whether key is present.
	Has(key string) bool
	// Render serializes the given keys at the given tab indentation.
	Render(keys []string, indent int) (string, error)
}

type definitionSpace struct {
	tree *definition.Tree
}

func (s definitionSpace) CurrentKeys() []string { return s.tree.Keys() }

func (s definitionSpace) Has(key string) bool { return s.tree.HasKey(key) }

// Render encodes the keys one at a time first so a value that cannot be
// encoded drops only its own key. The error lists every dropped key.
func (s definitionSpace) Render(keys []string, indent int) (string, error) {
	good := make([]string, 0, len(keys))
	var errs []error
	for _, k := range keys {
		if _, err := definition.Encode(s.tree.Subset([]string{k}), 0); err != nil {
			errs = append(errs, fmt.Errorf("encode %q: %w", k, err))
			continue
		}
		good = append(good, k)
	}
	if len(errs) > 0 && len(good) == 0 {
		return "", errors.Join(errs...)
	}

	out, err := definition.Encode(s.tree.Subset(good), indent)
	if err != nil {
		return "", err
	}
	return out, errors.Join(errs...)
}

type appearanceSpace struct {
	reg *appearance.Registry
}

func (s appearanceSpace) CurrentKeys() []string { return s.reg.Groups() }

func (s appearanceSpace) Has(key string) bool { return s.reg.HasGroup(key) }

func (s appearanceSpace) Render(keys []string, indent int) (string, error) {
	return s.reg.Render(keys, indent), nil
}
