// Package images builds Contentful Images API URLs for page components.
package images

import (
	"math"
	"net/url"
	"strconv"

	"github.com/goliatone/go-contentful/internal/client"
)

// aspectMultipliers converts a target width into the height matching the
// aspect ratio tag.
var aspectMultipliers = map[string]float64{
	"1:1":  1,
	"3:2":  0.6666,
	"16:9": 0.5625,
}

// Height computes the crop height for a target width and aspect ratio tag.
// An unrecognized aspect yields height 0, which requests an uncropped
// height from the CDN rather than failing; templates rely on this.
func Height(width int, aspect string) int {
	return int(math.Round(float64(width) * aspectMultipliers[aspect]))
}

// URL returns an https CDN URL for the asset cropped to width and aspect,
// using fill cropping with a face-aware focal point.
func URL(asset *client.Asset, width int, aspect string) string {
	params := url.Values{}
	params.Set("w", strconv.Itoa(width))
	params.Set("h", strconv.Itoa(Height(width, aspect)))
	params.Set("fit", "fill")
	params.Set("f", "faces")
	return "https:" + asset.URL + "?" + params.Encode()
}
