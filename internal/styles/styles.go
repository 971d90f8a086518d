// Package styles maps enumerated CMS field values onto the Protocol CSS
// class names the page templates expect. Every helper is total: unmapped
// values fall back to an empty suffix, never an error, because the exact
// output strings (trailing hyphens included) are part of the template
// contract.
package styles

var aspectRatios = map[string]string{
	"1:1":  "1-1",
	"3:2":  "3-2",
	"16:9": "16-9",
}

var productThemes = map[string]string{
	"Firefox":           "firefox",
	"Firefox Beta":      "beta",
	"Firefox Developer": "developer",
	"Firefox Nightly":   "nightly",
}

var widths = map[string]string{
	"Extra Small": "xs",
	"Small":       "sm",
	"Medium":      "md",
	"Large":       "lg",
	"Extra Large": "xl",
}

var layoutClasses = map[string]string{
	"layout2Cards": "mzp-l-card-half",
	"layout3Cards": "mzp-l-card-third",
	"layout4Cards": "mzp-l-card-quarter",
	"layout5Cards": "mzp-l-card-hero",
}

// AspectRatioClass returns the aspect sizing class for a ratio tag.
func AspectRatioClass(aspectRatio string) string {
	return "mzp-has-aspect-" + aspectRatios[aspectRatio]
}

// ProductClass returns the product theme class for a product name.
func ProductClass(product string) string {
	return "mzp-t-product-" + productThemes[product]
}

// WidthClass returns the content width class for a width label.
func WidthClass(width string) string {
	return "mzp-t-content-" + widths[width]
}

// LayoutClass returns the card grid class keyed by the layout entry's own
// content type tag.
func LayoutClass(layout string) string {
	return layoutClasses[layout]
}

// ThemeClass returns the dark theme class, or "" for any other theme value.
func ThemeClass(theme string) string {
	if theme == "Dark" {
		return "mzp-t-dark"
	}
	return ""
}
