package locale_test

import (
	"testing"

	"github.com/goliatone/go-contentful/internal/locale"
)

func TestContentfulMapsSpanishVariantsToSharedLocale(t *testing.T) {
	for _, site := range []string{"es-ES", "es-MX", "es-AR"} {
		if got := locale.Contentful(site); got != "es" {
			t.Fatalf("expected %s to map to es, got %q", site, got)
		}
	}
}

func TestContentfulMapsGermanToRegionalTag(t *testing.T) {
	if got := locale.Contentful("de"); got != "de-DE" {
		t.Fatalf("expected de to map to de-DE, got %q", got)
	}
}

func TestContentfulPassesUnmappedLocalesThrough(t *testing.T) {
	cases := []string{"en-US", "fr", "ja", "", "es"}
	for _, site := range cases {
		if got := locale.Contentful(site); got != site {
			t.Fatalf("expected %q to pass through, got %q", site, got)
		}
	}
}
