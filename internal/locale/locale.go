// Package locale translates website locale codes into the locale tags the
// CMS space is configured with.
package locale

import "strings"

// localeMap lists the website locales whose CMS tag differs beyond the
// Spanish special case.
var localeMap = map[string]string{
	"de": "de-DE",
}

// Contentful returns the CMS locale for a website locale. Spanish regional
// variants all share the single "es" locale in the space; unmapped locales
// pass through unchanged. Total over any input.
func Contentful(locale string) string {
	if strings.HasPrefix(locale, "es-") {
		return "es"
	}
	if mapped, ok := localeMap[locale]; ok {
		return mapped
	}
	return locale
}
