package filters

import "strings"

// Translation keys consumed by the label resolver. A single-date filter
// probes for a value-specific key ("today", "yesterday", ...); range edges
// use the parameterized on-or-before / on-or-after phrases.
const (
	singleDateKeyPrefix = "filters.dateFilterLabelForValue."
	onOrBeforeKey       = "filters.dateRange.onOrBefore"
	onOrAfterKey        = "filters.dateRange.onOrAfter"
)

// Translator is the injected localization capability. Implementations live
// with the host (see internal/i18n); the resolver never assumes a key is
// present without checking HasKey first where the contract calls for it.
type Translator interface {
	// Translate renders the message for key with {param} placeholders
	// substituted from params.
	Translate(key string, params map[string]string) string

	// HasKey reports whether the message catalog defines key.
	HasKey(key string) bool
}

// Resolver computes display labels for applied filters. It is stateless
// beyond its configuration and safe for concurrent use.
type Resolver struct {
	translator Translator
	dateLayout string
}

// NewResolver creates a resolver bound to a translator and a locale short
// date layout (e.g. "1/2/2006" for en-US).
func NewResolver(tr Translator, dateLayout string) *Resolver {
	return &Resolver{translator: tr, dateLayout: dateLayout}
}

// Label resolves the display label for an applied filter against a catalog.
//
// A non-empty Label on the applied filter short-circuits everything.
// An applied filter with no matching catalog entry degrades to its raw
// value rather than failing. Otherwise the result is the definition's
// label, operator text and kind-specific fragment joined positionally
// with single spaces. An absent operator text still occupies its slot,
// yielding a double space; downstream consumers compensate for this, so
// it must not be normalized away.
func (r *Resolver) Label(f Applied, cat Catalog) string {
	if f.Label != "" {
		return f.Label
	}

	def, ok := cat.Find(f.Key)
	if !ok {
		return f.Value
	}

	return strings.Join([]string{def.Label, def.OperatorText, r.kindLabel(def, f)}, " ")
}

// Labels resolves every entry of a set in display order.
func (r *Resolver) Labels(s Set, cat Catalog) []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = r.Label(f, cat)
	}
	return out
}

// kindLabel computes the kind-specific fragment. Only KindSelect and
// KindDateSelector have bespoke handling; every other kind echoes the
// raw value.
func (r *Resolver) kindLabel(def Definition, f Applied) string {
	switch def.Kind {
	case KindSelect:
		for _, opt := range def.Options {
			if opt.Value() == f.Value {
				return opt.Label()
			}
		}
		return f.Value

	case KindDateSelector:
		switch {
		case def.Key == f.Key:
			// Exact single-date match: named values like "today" may
			// carry their own translation.
			key := singleDateKeyPrefix + f.Value
			if r.translator.HasKey(key) {
				return r.translator.Translate(key, nil)
			}
			return f.Value
		case f.Key == def.MaxKey:
			return r.translator.Translate(onOrBeforeKey, map[string]string{
				"date": r.FormatDateForDisplay(f.Value),
			})
		case f.Key == def.MinKey:
			return r.translator.Translate(onOrAfterKey, map[string]string{
				"date": r.FormatDateForDisplay(f.Value),
			})
		default:
			return f.Value
		}

	default:
		return f.Value
	}
}
