// Package preview fans out reads across heterogeneous section types and
// merges them into a normalized map of per-section summaries for dashboard
// rendering. The aggregator is best-effort: a section whose fetch fails is
// omitted from the map and never blocks the rest of the batch.
package preview

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frly/client-go/internal/api"
	"github.com/frly/client-go/internal/split"
	"github.com/frly/client-go/internal/types"
)

// Truncation limits. Previews are summaries, not full views.
const (
	maxListItems     = 3
	maxReminders     = 3
	maxCalendarToday = 3
	maxGalleryThumbs = 4

	// maxNoteSnippet caps the note snippet length in runes.
	maxNoteSnippet = 220
)

// Aggregator loads per-section previews in a single concurrent batch and
// publishes the result as a complete replacement map. It is safe for
// concurrent use.
//
// Two guards keep re-renders cheap and stale data out:
//
//   - A batch whose input (section ids, in order, plus user id) matches the
//     previously published batch is answered from the published map without
//     any network call.
//   - Each batch captures a generation number at dispatch and only publishes
//     if it is still the newest batch when all fetches have settled. A
//     superseded batch returns ErrSuperseded and leaves published state
//     untouched.
type Aggregator struct {
	http    *http.Client
	baseURL string
	now     func() time.Time

	gen atomic.Uint64 // newest dispatched batch

	mu        sync.Mutex
	lastKey   string
	published map[int64]types.Preview
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock overrides the time source used to decide which calendar events
// count as "today". Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New returns an Aggregator issuing requests through httpClient against
// baseURL.
func New(httpClient *http.Client, baseURL string, opts ...Option) *Aggregator {
	a := &Aggregator{
		http:    httpClient,
		baseURL: baseURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Refresh loads previews for sections and publishes the resulting map. The
// userID selects "my balance" in PAYMENT previews. All section fetches run
// concurrently; Refresh returns only after every fetch has settled.
//
// If the input is identical to the previously published batch the published
// map is returned without any fetch. If a newer Refresh is dispatched while
// this one is in flight, this one returns ErrSuperseded and publishes
// nothing.
func (a *Aggregator) Refresh(ctx context.Context, sections []types.Section, userID int64) (map[int64]types.Preview, error) {
	key := batchKey(sections, userID)

	a.mu.Lock()
	if key == a.lastKey && a.published != nil {
		m := copyPreviews(a.published)
		a.mu.Unlock()
		return m, nil
	}
	a.mu.Unlock()

	myGen := a.gen.Add(1)
	start := time.Now()

	batch := make(map[int64]types.Preview)
	var batchMu sync.Mutex

	g := new(errgroup.Group)
	for _, section := range sections {
		if section.Type == types.SectionFolder {
			continue // folders render from live child counts, no preview
		}
		section := section
		g.Go(func() error {
			p, err := a.fetch(ctx, section, userID)
			if err != nil {
				// A broken section is omitted; it must not taint the rest
				// of the batch.
				sectionFetchFailures.WithLabelValues(string(section.Type)).Inc()
				return nil
			}
			batchMu.Lock()
			batch[section.ID] = p
			batchMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	batchDuration.Observe(time.Since(start).Seconds())

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen.Load() != myGen {
		batchesSuperseded.Inc()
		return nil, ErrSuperseded
	}
	a.lastKey = key
	a.published = batch
	return copyPreviews(batch), nil
}

// Previews returns a copy of the most recently published map, nil if no
// batch has published yet.
func (a *Aggregator) Previews() map[int64]types.Preview {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.published == nil {
		return nil
	}
	return copyPreviews(a.published)
}

// Invalidate forgets the published batch key so the next Refresh fetches
// even for an unchanged input, e.g. after a known mutation.
func (a *Aggregator) Invalidate() {
	a.mu.Lock()
	a.lastKey = ""
	a.mu.Unlock()
}

// fetch performs the type-specific read(s) for one section and shapes the
// preview. PAYMENT issues its two reads concurrently.
func (a *Aggregator) fetch(ctx context.Context, section types.Section, userID int64) (types.Preview, error) {
	switch section.Type {
	case types.SectionNote:
		return a.fetchNote(ctx, section.ID)
	case types.SectionList:
		return a.fetchList(ctx, section.ID)
	case types.SectionReminder:
		return a.fetchReminders(ctx, section.ID)
	case types.SectionGallery:
		return a.fetchGallery(ctx, section.ID)
	case types.SectionPayment:
		return a.fetchPayment(ctx, section.ID, userID)
	case types.SectionCalendar:
		return a.fetchCalendar(ctx, section.ID)
	default:
		return nil, errUnknownSectionType(section.Type)
	}
}

func (a *Aggregator) fetchNote(ctx context.Context, sectionID int64) (types.Preview, error) {
	note, err := api.GetNote(ctx, a.http, a.baseURL, sectionID)
	if err != nil {
		return nil, err
	}
	return types.NotePreview{
		Snippet:          snippet(note.Content, maxNoteSnippet),
		LastEditedAt:     note.LastEditedAt,
		LastEditedByName: note.LastEditedByName,
	}, nil
}

func (a *Aggregator) fetchList(ctx context.Context, sectionID int64) (types.Preview, error) {
	items, err := api.ListItems(ctx, a.http, a.baseURL, sectionID)
	if err != nil {
		return nil, err
	}
	p := types.ListPreview{}
	for _, item := range items {
		if len(p.Items) == maxListItems {
			break
		}
		p.Items = append(p.Items, types.ListItemPreview{Text: item.Text, Completed: item.Completed})
	}
	return p, nil
}

func (a *Aggregator) fetchReminders(ctx context.Context, sectionID int64) (types.Preview, error) {
	reminders, err := api.ListReminders(ctx, a.http, a.baseURL, sectionID)
	if err != nil {
		return nil, err
	}
	// Unsent first; otherwise keep the server's order.
	sort.SliceStable(reminders, func(i, j int) bool {
		return !reminders[i].IsSent && reminders[j].IsSent
	})
	p := types.ReminderPreview{}
	for _, r := range reminders {
		if len(p.Reminders) == maxReminders {
			break
		}
		p.Reminders = append(p.Reminders, types.ReminderEntry{
			Title:       r.Title,
			TriggerTime: r.TriggerTime,
			IsSent:      r.IsSent,
		})
	}
	return p, nil
}

func (a *Aggregator) fetchGallery(ctx context.Context, sectionID int64) (types.Preview, error) {
	items, err := api.ListGalleryItems(ctx, a.http, a.baseURL, sectionID)
	if err != nil {
		return nil, err
	}
	p := types.GalleryPreview{TotalCount: len(items)}
	for _, item := range items {
		if len(p.Images) == maxGalleryThumbs {
			break
		}
		p.Images = append(p.Images, types.GalleryThumb{URL: item.URL, ContentType: item.ContentType})
	}
	return p, nil
}

func (a *Aggregator) fetchPayment(ctx context.Context, sectionID, userID int64) (types.Preview, error) {
	var (
		balances []types.Balance
		expenses []types.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = api.ListBalances(gctx, a.http, a.baseURL, sectionID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = api.ListExpenses(gctx, a.http, a.baseURL, sectionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// My balance plus total volume, so the card isn't misleadingly zero for
	// a settled-up member of an active ledger.
	return types.PaymentPreview{
		Balance:     split.MemberBalance(balances, userID),
		TotalSpent:  split.TotalSpent(expenses),
		HasActivity: len(balances) > 0 || len(expenses) > 0,
	}, nil
}

func (a *Aggregator) fetchCalendar(ctx context.Context, sectionID int64) (types.Preview, error) {
	events, err := api.ListCalendarEvents(ctx, a.http, a.baseURL, sectionID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	today := make([]types.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if sameDay(ev.StartTime, now) {
			today = append(today, ev)
		}
	}
	sort.Slice(today, func(i, j int) bool { return today[i].StartTime.Before(today[j].StartTime) })

	p := types.CalendarPreview{TotalCount: len(events)}
	for _, ev := range today {
		if len(p.TodayEvents) == maxCalendarToday {
			break
		}
		p.TodayEvents = append(p.TodayEvents, types.CalendarEntry{Title: ev.Title, StartTime: ev.StartTime})
	}
	return p, nil
}

// batchKey derives a stable identity from the ordered section ids and the
// user, so a structurally equal input built from a fresh slice does not
// trigger a refetch.
func batchKey(sections []types.Section, userID int64) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(s.ID, 10))
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(userID, 10))
	return b.String()
}

// sameDay reports whether t falls on the same calendar day as ref, in ref's
// location.
func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// snippet trims surrounding whitespace and caps the text at limit runes.
func snippet(content string, limit int) string {
	trimmed := strings.TrimSpace(content)
	runes := []rune(trimmed)
	if len(runes) <= limit {
		return trimmed
	}
	return string(runes[:limit])
}

func copyPreviews(src map[int64]types.Preview) map[int64]types.Preview {
	dst := make(map[int64]types.Preview, len(src))
	for id, p := range src {
		dst[id] = p
	}
	return dst
}
