package pages

import (
	"github.com/goliatone/go-contentful/internal/client"
	"github.com/goliatone/go-contentful/internal/images"
	"github.com/goliatone/go-contentful/internal/styles"
)

const (
	cardImageWidth      = 800
	largeCardImageWidth = 1860
	largeCardAspect     = "16:9"
)

// walk classifies the page by archetype and dispatches each content entry to
// its extraction function, preserving source order.
func (s *service) walk(page *client.Entry) ([]Component, error) {
	switch page.ContentType {
	case TypePageGeneral:
		return s.walkGeneral(page)
	case TypePageVersatile:
		return s.walkVersatile(page)
	case TypePageHome:
		return s.walkHome(page)
	default:
		return nil, &UnsupportedContentTypeError{
			EntryID:     page.ID,
			ContentType: page.ContentType,
		}
	}
}

// walkGeneral picks the known component fields off the page entry itself.
// The field set is fixed, so lookups run in template order; unrecognized
// fields are ignored.
func (s *service) walkGeneral(page *client.Entry) ([]Component, error) {
	var entries []Component

	if hero, ok := page.Link("component_hero"); ok {
		component, err := s.heroData(hero)
		if err != nil {
			return nil, err
		}
		entries = append(entries, component)
	}
	if body := page.Document("body"); body != nil {
		component, err := s.textData(body)
		if err != nil {
			return nil, err
		}
		entries = append(entries, component)
	}
	if callout, ok := page.Link("layout_callout"); ok {
		component, err := s.calloutData(callout)
		if err != nil {
			return nil, err
		}
		entries = append(entries, component)
	}

	return entries, nil
}

func (s *service) walkVersatile(page *client.Entry) ([]Component, error) {
	content, err := page.RequireLinks("content")
	if err != nil {
		return nil, err
	}

	var entries []Component
	for _, item := range content {
		var (
			component Component
			err       error
		)
		switch item.ContentType {
		case typeHero:
			component, err = s.heroData(item)
		case typeCallout:
			component, err = s.calloutData(item)
		default:
			s.logger.Debug("pages.walk.skip_entry", "entry_id", item.ID, "content_type", item.ContentType)
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, component)
	}
	return entries, nil
}

func (s *service) walkHome(page *client.Entry) ([]Component, error) {
	content, err := page.RequireLinks("content")
	if err != nil {
		return nil, err
	}

	var entries []Component
	for _, item := range content {
		var (
			component Component
			err       error
		)
		switch item.ContentType {
		case typeHero:
			component, err = s.heroData(item)
		case typeSectionHeading:
			component, err = s.sectionHeadingData(item)
		case typeCallout:
			component, err = s.calloutData(item)
		case typeLayout2Cards, typeLayout3Cards, typeLayout5Cards:
			component, err = s.cardLayoutData(item)
		default:
			s.logger.Debug("pages.walk.skip_entry", "entry_id", item.ID, "content_type", item.ContentType)
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, component)
	}
	return entries, nil
}

func (s *service) heroData(hero *client.Entry) (*Hero, error) {
	image, err := hero.RequireAsset("image")
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.Render(hero.Document("body"))
	if err != nil {
		return nil, err
	}

	position := hero.String("image_position")
	imageClass := ""
	if position == "Left" {
		imageClass = "mzp-l-reverse"
	}

	return &Hero{
		Component:     "hero",
		ThemeClass:    styles.ThemeClass(hero.String("theme")),
		ProductClass:  styles.ProductClass(hero.String("product_icon")),
		Title:         hero.String("heading"),
		Tagline:       hero.String("tagline"),
		Body:          body,
		Image:         "https:" + image.URL,
		ImagePosition: position,
		ImageClass:    imageClass,
		CTA:           s.ctaData(hero),
	}, nil
}

func (s *service) sectionHeadingData(heading *client.Entry) (*SectionHeading, error) {
	return &SectionHeading{
		Component: "sectionHeading",
		Heading:   heading.String("heading"),
	}, nil
}

// calloutData merges the callout config entry with the content entry it
// references: theme comes from the config, copy and CTA from the content.
func (s *service) calloutData(config *client.Entry) (*Callout, error) {
	content, err := config.RequireLink("component_callout")
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.Render(content.Document("body"))
	if err != nil {
		return nil, err
	}

	return &Callout{
		Component:    "callout",
		ThemeClass:   styles.ThemeClass(config.String("theme")),
		ProductClass: styles.ProductClass(content.String("product_icon")),
		Title:        content.String("heading"),
		Body:         body,
		CTA:          s.ctaData(content),
	}, nil
}

func (s *service) cardData(card *client.Entry, aspectRatio string) (*Card, error) {
	image, err := card.RequireAsset("image")
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.Render(card.Document("body"))
	if err != nil {
		return nil, err
	}

	return &Card{
		Component:       "card",
		Heading:         card.String("heading"),
		Tag:             card.String("tag"),
		Link:            card.String("link"),
		Body:            body,
		AspectRatio:     styles.AspectRatioClass(aspectRatio),
		HighResImageURL: images.URL(image, cardImageWidth, aspectRatio),
		ImageURL:        images.URL(image, cardImageWidth, aspectRatio),
	}, nil
}

// largeCardData extracts the referenced card, then relabels it and re-derives
// both image URLs at the large card's fixed width and aspect, regardless of
// the layout's configured aspect ratio.
func (s *service) largeCardData(layout, card *client.Entry) (*Card, error) {
	image, err := layout.RequireAsset("image")
	if err != nil {
		return nil, err
	}

	data, err := s.cardData(card, largeCardAspect)
	if err != nil {
		return nil, err
	}

	data.Component = "large_card"
	data.HighResImageURL = images.URL(image, largeCardImageWidth, largeCardAspect)
	data.ImageURL = images.URL(image, largeCardImageWidth, largeCardAspect)
	return data, nil
}

func (s *service) cardLayoutData(layout *client.Entry) (*CardLayout, error) {
	aspectRatio := layout.String("aspect_ratio")

	data := &CardLayout{
		Component:   "cardLayout",
		LayoutClass: styles.LayoutClass(layout.ContentType),
		AspectRatio: aspectRatio,
		Cards:       []*Card{},
	}

	if layout.ContentType == typeLayout5Cards {
		largeCardConfig, err := layout.RequireLink("large_card")
		if err != nil {
			return nil, err
		}
		card, err := largeCardConfig.RequireLink("card")
		if err != nil {
			return nil, err
		}
		largeCard, err := s.largeCardData(largeCardConfig, card)
		if err != nil {
			return nil, err
		}
		data.Cards = append(data.Cards, largeCard)
	}

	cards, err := layout.RequireLinks("content")
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		cardData, err := s.cardData(card, aspectRatio)
		if err != nil {
			return nil, err
		}
		data.Cards = append(data.Cards, cardData)
	}

	return data, nil
}

func (s *service) textData(doc map[string]any) (*Text, error) {
	body, err := s.renderer.Render(doc)
	if err != nil {
		return nil, err
	}
	return &Text{
		Component:  "text",
		Body:       body,
		WidthClass: styles.WidthClass("Medium"),
	}, nil
}

// ctaData resolves an optional CTA reference. An absent reference yields the
// bare include_cta=false marker the templates test against.
func (s *service) ctaData(parent *client.Entry) *CTA {
	cta, ok := parent.Link("cta")
	if !ok {
		return &CTA{IncludeCTA: false}
	}

	return &CTA{
		Component:  cta.ContentType,
		Label:      cta.String("label"),
		Action:     cta.String("action"),
		Size:       "mzp-t-xl",
		Theme:      "mzp-t-primary",
		IncludeCTA: true,
	}
}
