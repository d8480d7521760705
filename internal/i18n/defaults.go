package i18n

// defaultMessages is the built-in en-US catalog. Deployments normally
// overlay locale files on top of it; the built-in set keeps label
// resolution working with no locale directory at all.
var defaultMessages = map[string]string{
	"filters.dateRange.onOrBefore": "On or before {date}",
	"filters.dateRange.onOrAfter":  "On or after {date}",

	"filters.dateFilterLabelForValue.today":         "Today",
	"filters.dateFilterLabelForValue.yesterday":     "Yesterday",
	"filters.dateFilterLabelForValue.past_week":     "In the last 7 days",
	"filters.dateFilterLabelForValue.past_month":    "In the last 30 days",
	"filters.dateFilterLabelForValue.past_quarter":  "In the last 90 days",
	"filters.dateFilterLabelForValue.past_year":     "In the last year",
	"filters.dateFilterLabelForValue.coming_week":   "In the next 7 days",
	"filters.dateFilterLabelForValue.coming_month":  "In the next 30 days",
	"filters.dateFilterLabelForValue.coming_year":   "In the next year",
}

// DefaultBundle returns a bundle pre-loaded with the built-in en-US
// locale.
func DefaultBundle() *Bundle {
	b := NewBundle()
	loc, err := NewLocale("en-US", DefaultDateLayout, defaultMessages)
	if err != nil {
		// The built-in tag is constant; a parse failure is a programming error.
		panic(err)
	}
	b.Add(loc)
	return b
}
