package idcard

import "fmt"

// Validator reports whether s is a valid identity-card number.
// Implementations must be safe to call concurrently.
type Validator func(s string) bool

// Entry binds a locale to its validator.
type Entry struct {
	Locale    Locale
	Validator Validator
}

// Registry is an ordered, immutable set of locale validators.
// Iteration order is registration order; "any" dispatch depends on it.
type Registry struct {
	entries []Entry
	index   map[Locale]int
}

// NewRegistry builds a registry from entries, keeping their order.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Locale]int, len(entries)),
	}
	for _, e := range entries {
		switch {
		case e.Locale == "" || e.Validator == nil:
			return nil, ErrNilValidator
		case e.Locale == Any:
			return nil, fmt.Errorf("%w: %q", ErrReservedLocale, e.Locale)
		}
		if _, exists := r.index[e.Locale]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, e.Locale)
		}
		r.index[e.Locale] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// MustNewRegistry works like NewRegistry but panics on error.
func MustNewRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the validator registered for exactly l.
func (r *Registry) Lookup(l Locale) (Validator, bool) {
	i, ok := r.index[l]
	if !ok {
		return nil, false
	}
	return r.entries[i].Validator, true
}

// Entries returns a copy of all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Locales returns the registered locales in registration order.
func (r *Registry) Locales() []Locale {
	out := make([]Locale, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Locale
	}
	return out
}

// Len returns the number of registered locales.
func (r *Registry) Len() int {
	return len(r.entries)
}

var defaultRegistry = MustNewRegistry(
	Entry{Locale: Spain, Validator: ValidES},
	Entry{Locale: India, Validator: ValidIN},
	Entry{Locale: Norway, Validator: ValidNO},
	Entry{Locale: Israel, Validator: ValidIL},
	Entry{Locale: Tunisia, Validator: ValidTN},
	Entry{Locale: China, Validator: ValidCN},
	Entry{Locale: Taiwan, Validator: ValidTW},
)

// Default returns the registry of built-in locales.
func Default() *Registry {
	return defaultRegistry
}
