package handlers

import (
	"github.com/gin-gonic/gin"

	"filterbar/internal/domain/filters"
	"filterbar/internal/i18n"
)

// negotiateLocale picks the best locale for a request. An explicit
// ?locale= query outranks the Accept-Language header.
func negotiateLocale(c *gin.Context, bundle *i18n.Bundle) *i18n.Locale {
	prefs := make([]string, 0, 2)
	if q := c.Query("locale"); q != "" {
		prefs = append(prefs, q)
	}
	if al := c.GetHeader("Accept-Language"); al != "" {
		prefs = append(prefs, al)
	}
	return bundle.Match(prefs...)
}

// resolverFor builds a label resolver bound to the request's locale.
func resolverFor(loc *i18n.Locale) *filters.Resolver {
	return filters.NewResolver(loc, loc.DateLayout())
}
