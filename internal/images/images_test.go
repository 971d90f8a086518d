package images_test

import (
	"testing"

	"github.com/goliatone/go-contentful/internal/client"
	"github.com/goliatone/go-contentful/internal/images"
)

func TestHeightDerivesFromAspectRatio(t *testing.T) {
	cases := []struct {
		width  int
		aspect string
		want   int
	}{
		{800, "1:1", 800},
		{800, "3:2", 533},
		{800, "16:9", 450},
		{1860, "16:9", 1046},
		{800, "4:3", 0},
		{800, "", 0},
	}
	for _, tc := range cases {
		if got := images.Height(tc.width, tc.aspect); got != tc.want {
			t.Fatalf("Height(%d, %q) = %d, want %d", tc.width, tc.aspect, got, tc.want)
		}
	}
}

func TestURLBuildsCDNCropParameters(t *testing.T) {
	asset := &client.Asset{URL: "//images.ctfassets.net/space/hero.png"}

	got := images.URL(asset, 800, "16:9")
	want := "https://images.ctfassets.net/space/hero.png?f=faces&fit=fill&h=450&w=800"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestURLUnknownAspectRequestsUncroppedHeight(t *testing.T) {
	asset := &client.Asset{URL: "//images.ctfassets.net/space/logo.svg"}

	got := images.URL(asset, 400, "9:16")
	want := "https://images.ctfassets.net/space/logo.svg?f=faces&fit=fill&h=0&w=400"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}
