package filters

import (
	"strings"
	"time"
)

// dateLayouts are the accepted raw date shapes, tried in order. Values
// arrive from the host as bare ISO dates ("2020-01-15"), their
// slash-separated form after substitution, or full timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
}

// parseDate parses raw against the accepted layouts.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateForDisplay renders a raw date value with the locale short
// layout. An unparseable value is returned unchanged. A parseable value is
// reformatted from its dash→slash substituted form; the substitution works
// around timezone ambiguity of bare ISO dates and the double parse
// (validate first, then reformat) is deliberate: a value that fails the
// first parse is never reformatted.
func FormatDateForDisplay(raw, layout string) string {
	if _, ok := parseDate(raw); !ok {
		return raw
	}
	t, ok := parseDate(strings.ReplaceAll(raw, "-", "/"))
	if !ok {
		return raw
	}
	return t.Format(layout)
}

// FormatDateForDisplay renders raw with the resolver's locale layout.
func (r *Resolver) FormatDateForDisplay(raw string) string {
	return FormatDateForDisplay(raw, r.dateLayout)
}
