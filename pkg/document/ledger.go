package document

// Namespace identifies a consumable key space of a document.
type Namespace string

const (
	// Definition is keyed by the top-level definition keys.
	Definition Namespace = "definition"
	// Appearance is keyed by the appearance group identifiers.
	Appearance Namespace = "appearance"
)

// Ledger records which keys have been emitted, per namespace.
// A recorded key is never handed out again.
type Ledger struct {
	consumed map[Namespace]map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{consumed: make(map[Namespace]map[string]struct{})}
}

// Claim records the keys not consumed yet in ns and returns them in request
// order. Keys repeated within the request are returned once.
func (l *Ledger) Claim(ns Namespace, keys []string) []string {
	set, ok := l.consumed[ns]
	if !ok {
		set = make(map[string]struct{}, len(keys))
		l.consumed[ns] = set
	}

	var claimed []string
	for _, k := range keys {
		if _, done := set[k]; done {
			continue
		}
		set[k] = struct{}{}
		claimed = append(claimed, k)
	}
	return claimed
}

// Consumed reports whether key was already emitted in ns.
func (l *Ledger) Consumed(ns Namespace, key string) bool {
	_, ok := l.consumed[ns][key]
	return ok
}

// Len returns the number of keys consumed in ns.
func (l *Ledger) Len(ns Namespace) int {
	return len(l.consumed[ns])
}
