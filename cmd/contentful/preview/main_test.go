package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	contentful "github.com/goliatone/go-contentful"
	"github.com/goliatone/go-contentful/cmd/contentful/internal/bootstrap"
	"github.com/goliatone/go-contentful/internal/client"
	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/pages"
)

type stubPageService struct {
	listing []pages.PageInfo
	content map[string]*pages.PageContent
}

func (s *stubPageService) GetPageContent(_ context.Context, pageID string) (*pages.PageContent, error) {
	content, ok := s.content[pageID]
	if !ok {
		return nil, &client.NotFoundError{ID: pageID}
	}
	return content, nil
}

func (s *stubPageService) ListPages(context.Context) ([]pages.PageInfo, error) {
	return s.listing, nil
}

func (s *stubPageService) GetPageType(_ context.Context, pageID string) (string, error) {
	content, ok := s.content[pageID]
	if !ok {
		return "", &client.NotFoundError{ID: pageID}
	}
	return content.PageType, nil
}

func (s *stubPageService) GetEntry(_ context.Context, entryID string) (*client.Entry, error) {
	return nil, &client.NotFoundError{ID: entryID}
}

func previewModule(t *testing.T) *contentful.Module {
	t.Helper()

	svc := &stubPageService{
		listing: []pages.PageInfo{{ID: "home", Title: "Home", Slug: "home"}},
		content: map[string]*pages.PageContent{
			"home": {
				PageType: "pageHome",
				Info:     pages.PageInfo{ID: "home", Title: "Home", Slug: "home"},
			},
		},
	}

	module, err := contentful.New(contentful.DefaultConfig(), di.WithPageService(svc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestRunPreviewListsPages(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	module := previewModule(t)
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runPreview(nil, &out); err != nil {
		t.Fatalf("runPreview returned error: %v", err)
	}

	if !strings.Contains(out.String(), `"slug": "home"`) {
		t.Fatalf("expected listing output, got %s", out.String())
	}
}

func TestRunPreviewFlattensPage(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	module := previewModule(t)
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runPreview([]string{"-page-id", "home"}, &out); err != nil {
		t.Fatalf("runPreview returned error: %v", err)
	}

	if !strings.Contains(out.String(), `"page_type": "pageHome"`) {
		t.Fatalf("expected flattened page output, got %s", out.String())
	}
}

func TestRunPreviewUnknownPage(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	module := previewModule(t)
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runPreview([]string{"-page-id", "missing"}, &out); err == nil {
		t.Fatalf("expected an error for an unknown page")
	}
}
