package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-contentful/cmd/contentful/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("contentful preview: %v", err)
	}
}

func runPreview(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("contentful-preview", flag.ExitOnError)
	spaceID := fs.String("space", "", "Contentful space ID (defaults to $CONTENTFUL_SPACE_ID)")
	accessKey := fs.String("key", "", "Content Delivery API access key (defaults to $CONTENTFUL_SPACE_KEY)")
	environment := fs.String("env", "", "Contentful environment (defaults to the deploy environment)")
	apiHost := fs.String("host", "", "Delivery API host (defaults to $CONTENTFUL_SPACE_API)")
	siteLocale := fs.String("locale", "", "Site locale used for image and text lookups")
	includeDepth := fs.Int("include", 0, "Linked entry resolution depth (defaults to 5)")
	pageID := fs.String("page-id", "", "Page entry to flatten; lists pages when omitted")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		SpaceID:       *spaceID,
		AccessKey:     *accessKey,
		Environment:   *environment,
		APIHost:       *apiHost,
		DefaultLocale: *siteLocale,
		IncludeDepth:  *includeDepth,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	ctx := context.Background()
	pages := module.Module.Pages()

	if *pageID == "" {
		infos, err := pages.ListPages(ctx)
		if err != nil {
			return fmt.Errorf("list pages: %w", err)
		}
		return emit(out, infos)
	}

	content, err := pages.GetPageContent(ctx, *pageID)
	if err != nil {
		return fmt.Errorf("flatten page %s: %w", *pageID, err)
	}
	return emit(out, content)
}

func emit(out io.Writer, payload any) error {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}
