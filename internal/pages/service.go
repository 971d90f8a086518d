package pages

import (
	"context"
	"strings"

	"github.com/goliatone/go-contentful/internal/client"
	"github.com/goliatone/go-contentful/internal/locale"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/richtext"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

// Content type tags recognized by the walker.
const (
	TypePageGeneral   = "pageGeneral"
	TypePageVersatile = "pageVersatile"
	TypePageHome      = "pageHome"

	typeHero           = "componentHero"
	typeSectionHeading = "componentSectionHeading"
	typeCallout        = "layoutCallout"
	typeLayout2Cards   = "layout2Cards"
	typeLayout3Cards   = "layout3Cards"
	typeLayout5Cards   = "layout5Cards"
)

const defaultIncludeDepth = 5

// Service flattens CMS page entry graphs into template-ready structures.
type Service interface {
	// GetPageContent walks the page's entry tree and returns the ordered
	// component outputs.
	GetPageContent(ctx context.Context, pageID string) (*PageContent, error)
	// ListPages lists every page entry, projecting only summary info.
	ListPages(ctx context.Context) ([]PageInfo, error)
	// GetPageType returns the content type tag of an entry.
	GetPageType(ctx context.Context, pageID string) (string, error)
	// GetEntry fetches a raw entry without flattening.
	GetEntry(ctx context.Context, entryID string) (*client.Entry, error)
}

// ServiceOption customises the page service.
type ServiceOption func(*service)

// WithRenderer overrides the rich text renderer.
func WithRenderer(renderer *richtext.Renderer) ServiceOption {
	return func(s *service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithLogger attaches the walker logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIncludeDepth overrides the reference expansion depth requested on the
// initial page fetch.
func WithIncludeDepth(depth int) ServiceOption {
	return func(s *service) {
		if depth > 0 {
			s.includeDepth = depth
		}
	}
}

// WithLocale sets the website locale for lookups. The value is translated to
// the CMS locale tag.
func WithLocale(siteLocale string) ServiceOption {
	return func(s *service) {
		s.locale = locale.Contentful(strings.TrimSpace(siteLocale))
	}
}

// WithPageContentType overrides the content type listed by ListPages.
func WithPageContentType(contentType string) ServiceOption {
	return func(s *service) {
		if strings.TrimSpace(contentType) != "" {
			s.pageContentType = contentType
		}
	}
}

type service struct {
	client          client.Client
	renderer        *richtext.Renderer
	logger          interfaces.Logger
	includeDepth    int
	locale          string
	pageContentType string
}

// NewService constructs the page walker. The delivery client may be nil when
// no space is configured; every lookup then fails with ErrClientUnavailable.
func NewService(cda client.Client, opts ...ServiceOption) Service {
	s := &service{
		client:          cda,
		renderer:        richtext.New(richtext.WithMarkTag("bold", "strong")),
		logger:          logging.NoOp(),
		includeDepth:    defaultIncludeDepth,
		pageContentType: TypePageVersatile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetPageContent(ctx context.Context, pageID string) (*PageContent, error) {
	if s.client == nil {
		return nil, ErrClientUnavailable
	}

	page, err := s.client.Entry(ctx, pageID, client.EntryOptions{
		Include: s.includeDepth,
		Locale:  s.locale,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.pageInfo(page)
	if err != nil {
		return nil, err
	}

	entries, err := s.walk(page)
	if err != nil {
		return nil, err
	}

	return &PageContent{
		PageType: page.ContentType,
		Info:     info,
		Entries:  entries,
	}, nil
}

func (s *service) ListPages(ctx context.Context) ([]PageInfo, error) {
	if s.client == nil {
		return nil, ErrClientUnavailable
	}

	entries, err := s.client.Entries(ctx, client.Query{
		ContentType: s.pageContentType,
		Locale:      s.locale,
	})
	if err != nil {
		return nil, err
	}

	pages := make([]PageInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := s.pageInfo(entry)
		if err != nil {
			return nil, err
		}
		info.ID = entry.ID
		pages = append(pages, info)
	}
	return pages, nil
}

func (s *service) GetPageType(ctx context.Context, pageID string) (string, error) {
	if s.client == nil {
		return "", ErrClientUnavailable
	}
	entry, err := s.client.Entry(ctx, pageID, client.EntryOptions{Locale: s.locale})
	if err != nil {
		return "", err
	}
	return entry.ContentType, nil
}

func (s *service) GetEntry(ctx context.Context, entryID string) (*client.Entry, error) {
	if s.client == nil {
		return nil, ErrClientUnavailable
	}
	return s.client.Entry(ctx, entryID, client.EntryOptions{Locale: s.locale})
}

func (s *service) pageInfo(page *client.Entry) (PageInfo, error) {
	title, err := page.RequireString("preview_title")
	if err != nil {
		return PageInfo{}, err
	}
	blurb, err := page.RequireString("preview_blurb")
	if err != nil {
		return PageInfo{}, err
	}

	info := PageInfo{
		Title: title,
		Blurb: blurb,
		Slug:  page.String("slug"),
	}
	if info.Slug == "" {
		info.Slug = "home"
	}
	if preview, ok := page.Asset("preview_image"); ok {
		info.Image = "https:" + preview.URL
	}
	return info, nil
}
