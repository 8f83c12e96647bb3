package client

import "github.com/frly/client-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Domain entities
type (
	Section       = types.Section
	SectionType   = types.SectionType
	Note          = types.Note
	ListItem      = types.ListItem
	Reminder      = types.Reminder
	GalleryItem   = types.GalleryItem
	CalendarEvent = types.CalendarEvent
	Member        = types.Member
	Expense       = types.Expense
	Share         = types.Share
	Balance       = types.Balance
	Money         = types.Money
)

// Section types
const (
	SectionNote     = types.SectionNote
	SectionList     = types.SectionList
	SectionGallery  = types.SectionGallery
	SectionReminder = types.SectionReminder
	SectionPayment  = types.SectionPayment
	SectionFolder   = types.SectionFolder
	SectionCalendar = types.SectionCalendar
)

// Requests
type (
	CreateSectionRequest  = types.CreateSectionRequest
	SaveNoteRequest       = types.SaveNoteRequest
	CreateListItemRequest = types.CreateListItemRequest
	ReminderRequest       = types.ReminderRequest
	CalendarEventRequest  = types.CalendarEventRequest
	ExpenseRequest        = types.ExpenseRequest
	ShareInput            = types.ShareInput
)

// Responses
type EnqueueAck = types.EnqueueAck

// Previews (tagged union; switch on the concrete types)
type (
	Preview         = types.Preview
	NotePreview     = types.NotePreview
	ListPreview     = types.ListPreview
	ReminderPreview = types.ReminderPreview
	GalleryPreview  = types.GalleryPreview
	PaymentPreview  = types.PaymentPreview
	CalendarPreview = types.CalendarPreview
)

// Money constructors, re-exported from the internal types package.
var (
	NewMoney        = types.NewMoney
	MoneyFromInt    = types.MoneyFromInt
	MoneyFromFloat  = types.MoneyFromFloat
	MoneyFromString = types.MoneyFromString
)
