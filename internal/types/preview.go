package types

import "time"

// Preview is a truncated, type-specific summary of a section's current
// content, keyed by section id in the aggregator's published map. The set of
// implementations is closed; a switch over the concrete types together with
// Kind covers every section type that produces a preview (FOLDER never
// does — folders render from live child counts instead).
type Preview interface {
	// Kind reports the section type this preview summarizes.
	Kind() SectionType
}

// NotePreview shows the leading snippet of a note.
type NotePreview struct {
	Snippet          string
	LastEditedAt     *time.Time
	LastEditedByName string
}

func (NotePreview) Kind() SectionType { return SectionNote }

// ListItemPreview is one truncated checklist row.
type ListItemPreview struct {
	Text      string
	Completed bool
}

// ListPreview shows the first few checklist entries.
type ListPreview struct {
	Items []ListItemPreview
}

func (ListPreview) Kind() SectionType { return SectionList }

// ReminderEntry is one truncated reminder row.
type ReminderEntry struct {
	Title       string
	TriggerTime time.Time
	IsSent      bool
}

// ReminderPreview shows the next few reminders, unsent first.
type ReminderPreview struct {
	Reminders []ReminderEntry
}

func (ReminderPreview) Kind() SectionType { return SectionReminder }

// GalleryThumb is one thumbnail reference.
type GalleryThumb struct {
	URL         string
	ContentType string
}

// GalleryPreview shows a handful of thumbnails plus the full item count.
type GalleryPreview struct {
	Images     []GalleryThumb
	TotalCount int
}

func (GalleryPreview) Kind() SectionType { return SectionGallery }

// PaymentPreview shows the current user's net balance and overall activity.
type PaymentPreview struct {
	Balance     Money
	TotalSpent  Money
	HasActivity bool
}

func (PaymentPreview) Kind() SectionType { return SectionPayment }

// CalendarEntry is one truncated event row.
type CalendarEntry struct {
	Title     string
	StartTime time.Time
}

// CalendarPreview shows today's events plus the full event count.
type CalendarPreview struct {
	TodayEvents []CalendarEntry
	TotalCount  int
}

func (CalendarPreview) Kind() SectionType { return SectionCalendar }
