package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-contentful/cmd/contentful/internal/bootstrap"
	pagescmd "github.com/goliatone/go-contentful/internal/commands/pages"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("contentful sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("contentful-sync", flag.ExitOnError)
	spaceID := fs.String("space", "", "Contentful space ID (defaults to $CONTENTFUL_SPACE_ID)")
	accessKey := fs.String("key", "", "Content Delivery API access key (defaults to $CONTENTFUL_SPACE_KEY)")
	environment := fs.String("env", "", "Contentful environment (defaults to the deploy environment)")
	apiHost := fs.String("host", "", "Delivery API host (defaults to $CONTENTFUL_SPACE_API)")
	siteLocale := fs.String("locale", "", "Site locale recorded on snapshots")
	includeDepth := fs.Int("include", 0, "Linked entry resolution depth (defaults to 5)")
	contentType := fs.String("content-type", "", "Restrict the run to one page archetype")
	dsn := fs.String("dsn", "file:contentful.db", "SQLite DSN for the snapshot store")
	dryRun := fs.Bool("dry-run", false, "Flatten every page without persisting snapshots")

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
		Snapshots:     true,
		DSN:           *dsn,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	msg := pagescmd.SyncPagesCommand{
		Locale:      *siteLocale,
		ContentType: *contentType,
		DryRun:      *dryRun,
	}

	if err := module.Module.SyncPages(context.Background(), msg); err != nil {
		return fmt.Errorf("sync pages: %w", err)
	}
	return nil
}
