package client

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/frly/client-go/internal/api"
	"github.com/frly/client-go/internal/job"
	"github.com/frly/client-go/internal/shardqueue"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the Go SDK for the frly workspace API. All methods are safe
// for concurrent use. Synchronous mutations propagate errors directly and
// are never retried; note saves go through a background executor that
// preserves per-section ordering (see SaveNote).
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor
	session *Session

	// saveErrHandler receives errors from async note saves that gave up:
	// conflicts, other 4xx, or exhausted retries.
	saveErrHandler func(error)

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given API base URL and session.
// Additional options can be provided via functional arguments.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if session == nil {
		panic("session cannot be nil")
	}

	c := &Client{
		baseURL: baseURL,
		session: session,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor(c.saveErrHandler)
	}

	// Wrap the transport so every request carries the correlation id, the
	// bearer token and the group scope.
	c.wrapTransport()

	return c
}

// wrapTransport layers the client's transports: session scoping outermost,
// then request-id stamping, then whatever the options installed (e.g. the
// debug transport) above the base transport.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &sessionTransport{
		base:    &requestIDTransport{base: base},
		session: c.session,
	}
}

// Session returns the session this client was built with.
func (c *Client) Session() *Session { return c.session }

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// AwaitConsistency blocks until all previously submitted note saves for the
// given section have been executed by the internal executor. It works by
// submitting a no-op job and waiting for it to run, thereby guaranteeing
// FIFO ordering has flushed.
func (c *Client) AwaitConsistency(ctx context.Context, sectionID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	barrier := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, strconv.FormatInt(sectionID, 10), barrier); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor with sane defaults.
func newDefaultExecutor(onError func(error)) *shardqueue.ShardExecutor {
	cfg := shardqueue.Config{Shards: 4, QueueSize: 1000}
	cfg.ErrorHandler = func(err error) {
		noteSavesFailedTotal.Inc()
		log.Warn().Err(err).Msg("async note save failed")
		if onError != nil {
			onError(err)
		}
	}
	return shardqueue.NewShardExecutor(cfg)
}

// --------------------------------------------------------------------
// Section operations - delegated to internal/api
// --------------------------------------------------------------------

// ListSections returns all sections of the current group.
func (c *Client) ListSections(ctx context.Context) ([]Section, error) {
	return api.ListSections(ctx, c.http, c.baseURL)
}

// CreateSection creates a new section and returns its id.
func (c *Client) CreateSection(ctx context.Context, req CreateSectionRequest) (int64, error) {
	return api.CreateSection(ctx, c.http, c.baseURL, req)
}

// DeleteSection removes a section.
func (c *Client) DeleteSection(ctx context.Context, sectionID int64) error {
	return api.DeleteSection(ctx, c.http, c.baseURL, sectionID)
}

// --------------------------------------------------------------------
// Note operations - mixed sync/async
// --------------------------------------------------------------------

// GetNote retrieves a NOTE section's document (synchronous).
func (c *Client) GetNote(ctx context.Context, sectionID int64) (*Note, error) {
	return api.GetNote(ctx, c.http, c.baseURL, sectionID)
}

// SaveNote submits a note save via the sharded executor, preserving FIFO
// ordering per section and retrying transient failures in the background.
// Conflicts and exhausted retries surface through the executor's error
// handler; use UpdateNote for a synchronous save with a direct error.
func (c *Client) SaveNote(ctx context.Context, sectionID int64, req SaveNoteRequest) (*EnqueueAck, error) {
	ack, err := api.SaveNote(ctx, c.exec, c.http, c.baseURL, sectionID, req)
	if err == nil {
		noteSavesEnqueuedTotal.WithLabelValues(job.ShardLabel(strconv.FormatInt(sectionID, 10))).Inc()
	}
	return ack, err
}

// UpdateNote saves note content synchronously. A lost optimistic-lock race
// is reported as a *NoteConflictError carrying the server's current note.
func (c *Client) UpdateNote(ctx context.Context, sectionID int64, req SaveNoteRequest) (*Note, error) {
	return api.UpdateNote(ctx, c.http, c.baseURL, sectionID, req)
}

// --------------------------------------------------------------------
// Checklist operations
// --------------------------------------------------------------------

// ListItems returns all checklist entries of a LIST section.
func (c *Client) ListItems(ctx context.Context, sectionID int64) ([]ListItem, error) {
	return api.ListItems(ctx, c.http, c.baseURL, sectionID)
}

// AddItem appends a checklist entry and returns its id.
func (c *Client) AddItem(ctx context.Context, sectionID int64, req CreateListItemRequest) (int64, error) {
	return api.AddItem(ctx, c.http, c.baseURL, sectionID, req)
}

// ToggleItem flips an entry's completed flag.
func (c *Client) ToggleItem(ctx context.Context, itemID int64) error {
	return api.ToggleItem(ctx, c.http, c.baseURL, itemID)
}

// --------------------------------------------------------------------
// Reminder operations
// --------------------------------------------------------------------

// ListReminders returns all reminders of a REMINDER section.
func (c *Client) ListReminders(ctx context.Context, sectionID int64) ([]Reminder, error) {
	return api.ListReminders(ctx, c.http, c.baseURL, sectionID)
}

// AddReminder creates a reminder and returns its id.
func (c *Client) AddReminder(ctx context.Context, sectionID int64, req ReminderRequest) (int64, error) {
	return api.AddReminder(ctx, c.http, c.baseURL, sectionID, req)
}

// UpdateReminder replaces a reminder's fields.
func (c *Client) UpdateReminder(ctx context.Context, reminderID int64, req ReminderRequest) error {
	return api.UpdateReminder(ctx, c.http, c.baseURL, reminderID, req)
}

// DeleteReminder removes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, reminderID int64) error {
	return api.DeleteReminder(ctx, c.http, c.baseURL, reminderID)
}

// --------------------------------------------------------------------
// Gallery operations (read-only; storage is external)
// --------------------------------------------------------------------

// ListGalleryItems returns file metadata of a GALLERY section.
func (c *Client) ListGalleryItems(ctx context.Context, sectionID int64) ([]GalleryItem, error) {
	return api.ListGalleryItems(ctx, c.http, c.baseURL, sectionID)
}

// --------------------------------------------------------------------
// Calendar operations
// --------------------------------------------------------------------

// ListCalendarEvents returns all events of a CALENDAR section.
func (c *Client) ListCalendarEvents(ctx context.Context, sectionID int64) ([]CalendarEvent, error) {
	return api.ListCalendarEvents(ctx, c.http, c.baseURL, sectionID)
}

// AddCalendarEvent creates an event and returns its id.
func (c *Client) AddCalendarEvent(ctx context.Context, sectionID int64, req CalendarEventRequest) (int64, error) {
	return api.AddCalendarEvent(ctx, c.http, c.baseURL, sectionID, req)
}

// UpdateCalendarEvent replaces an event's fields.
func (c *Client) UpdateCalendarEvent(ctx context.Context, eventID int64, req CalendarEventRequest) error {
	return api.UpdateCalendarEvent(ctx, c.http, c.baseURL, eventID, req)
}

// DeleteCalendarEvent removes an event.
func (c *Client) DeleteCalendarEvent(ctx context.Context, eventID int64) error {
	return api.DeleteCalendarEvent(ctx, c.http, c.baseURL, eventID)
}

// --------------------------------------------------------------------
// Payment operations
// --------------------------------------------------------------------

// ListBalances returns the server-computed net balance per member.
func (c *Client) ListBalances(ctx context.Context, sectionID int64) ([]Balance, error) {
	return api.ListBalances(ctx, c.http, c.baseURL, sectionID)
}

// ListExpenses returns all recorded expenses of a PAYMENT section.
func (c *Client) ListExpenses(ctx context.Context, sectionID int64) ([]Expense, error) {
	return api.ListExpenses(ctx, c.http, c.baseURL, sectionID)
}

// CreateExpense validates and records a new expense, returning its id.
// Validation errors (see ValidateExpense) are returned before any network
// call; nothing is submitted in that case.
func (c *Client) CreateExpense(ctx context.Context, sectionID int64, req ExpenseRequest) (int64, error) {
	return api.AddExpense(ctx, c.http, c.baseURL, sectionID, req)
}

// UpdateExpense validates and replaces an existing expense, shares included.
func (c *Client) UpdateExpense(ctx context.Context, sectionID, expenseID int64, req ExpenseRequest) error {
	return api.UpdateExpense(ctx, c.http, c.baseURL, sectionID, expenseID, req)
}

// DeleteExpense removes an expense; the server recomputes balances.
func (c *Client) DeleteExpense(ctx context.Context, sectionID, expenseID int64) error {
	return api.DeleteExpense(ctx, c.http, c.baseURL, sectionID, expenseID)
}

// --------------------------------------------------------------------
// Group operations
// --------------------------------------------------------------------

// ListMembers returns the approved members of the session's current group.
func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	return api.ListMembers(ctx, c.http, c.baseURL, c.session.GroupID())
}
