package pages

// Component is one normalized content entry, tagged for template selection.
// Every output carries a `component` discriminator the template layer
// switches on.
type Component interface {
	Kind() string
}

// PageContent is the flattened result for one page: its archetype, summary
// info, and the ordered component outputs.
type PageContent struct {
	PageType string      `json:"page_type"`
	Info     PageInfo    `json:"info"`
	Entries  []Component `json:"entries"`
}

// PageInfo is the summary projection used by page listings and previews.
type PageInfo struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Blurb string `json:"blurb"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// Hero is the flattened hero banner component.
type Hero struct {
	Component     string `json:"component"`
	ThemeClass    string `json:"theme_class"`
	ProductClass  string `json:"product_class"`
	Title         string `json:"title"`
	Tagline       string `json:"tagline"`
	Body          string `json:"body"`
	Image         string `json:"image"`
	ImagePosition string `json:"image_position"`
	ImageClass    string `json:"image_class"`
	CTA           *CTA   `json:"cta"`
}

func (h *Hero) Kind() string { return h.Component }

// SectionHeading is a standalone heading between page sections.
type SectionHeading struct {
	Component string `json:"component"`
	Heading   string `json:"heading"`
}

func (s *SectionHeading) Kind() string { return s.Component }

// Callout merges a callout config entry (theme) with its referenced content
// entry (copy and CTA).
type Callout struct {
	Component    string `json:"component"`
	ThemeClass   string `json:"theme_class"`
	ProductClass string `json:"product_class"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	CTA          *CTA   `json:"cta"`
}

func (c *Callout) Kind() string { return c.Component }

// Card is one card in a card grid. The large card variant reuses this shape
// with its own component tag and image sizing.
type Card struct {
	Component       string `json:"component"`
	Heading         string `json:"heading"`
	Tag             string `json:"tag"`
	Link            string `json:"link"`
	Body            string `json:"body"`
	AspectRatio     string `json:"aspect_ratio"`
	HighResImageURL string `json:"highres_image_url"`
	ImageURL        string `json:"image_url"`
}

func (c *Card) Kind() string { return c.Component }

// CardLayout is a card grid with its sizing class and ordered cards.
type CardLayout struct {
	Component   string  `json:"component"`
	LayoutClass string  `json:"layout_class"`
	AspectRatio string  `json:"aspect_ratio"`
	Cards       []*Card `json:"cards"`
}

func (c *CardLayout) Kind() string { return c.Component }

// Text is a free-standing rich text block.
type Text struct {
	Component  string `json:"component"`
	Body       string `json:"body"`
	WidthClass string `json:"width_class"`
}

func (t *Text) Kind() string { return t.Component }

// CTA is a call to action. An absent CTA reference yields exactly
// {"include_cta": false}; the remaining fields only serialize when present.
type CTA struct {
	Component  string `json:"component,omitempty"`
	Label      string `json:"label,omitempty"`
	Action     string `json:"action,omitempty"`
	Size       string `json:"size,omitempty"`
	Theme      string `json:"theme,omitempty"`
	IncludeCTA bool   `json:"include_cta"`
}

func (c *CTA) Kind() string { return c.Component }
