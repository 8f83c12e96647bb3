package client

import "github.com/frly/client-go/internal/preview"

// PreviewAggregator fans out concurrent per-section reads and publishes a
// normalized map of previews keyed by section id. See the preview package
// for the staleness and re-fetch semantics; the short version:
//
//   - Refresh with an unchanged section-id set and user does no network
//     calls and answers from the published map.
//   - A Refresh overtaken by a newer one returns ErrPreviewSuperseded and
//     never publishes.
//   - Sections whose fetch fails are omitted; the batch still publishes.
type PreviewAggregator = preview.Aggregator

// ErrPreviewSuperseded is returned by PreviewAggregator.Refresh when a
// newer refresh was dispatched while the batch was in flight.
var ErrPreviewSuperseded = preview.ErrSuperseded

// WithPreviewClock overrides the aggregator's time source used to decide
// which calendar events count as "today". Intended for tests.
var WithPreviewClock = preview.WithClock

// NewPreviewAggregator returns an aggregator that issues requests through
// this client's transport (session scope included). Call Refresh with the
// sections of one workspace level and the current user's id, typically
// c.Session().UserID().
func (c *Client) NewPreviewAggregator(opts ...preview.Option) *PreviewAggregator {
	return preview.New(c.http, c.baseURL, opts...)
}
