// Package client implements a minimal Contentful Content Delivery API
// client. It fetches entries with reference expansion and resolves the
// include payload into a graph of Entry and Asset values, so callers see
// materialized references instead of raw links.
package client
