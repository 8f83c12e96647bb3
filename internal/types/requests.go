package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// CreateSectionRequest holds parameters for a new section.
type CreateSectionRequest struct {
	Title    string      `json:"title"`
	Type     SectionType `json:"type"`
	ParentID *int64      `json:"parentId,omitempty"`
}

// SaveNoteRequest carries new note content. Version, when set, must match
// the server's current version or the save is rejected as a conflict.
type SaveNoteRequest struct {
	Content string `json:"content"`
	Version *int64 `json:"version,omitempty"`
}

// CreateListItemRequest holds parameters for a new checklist entry.
type CreateListItemRequest struct {
	Text string `json:"text"`
}

// ReminderRequest holds parameters for creating or updating a reminder.
type ReminderRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TriggerTime time.Time `json:"triggerTime"`
	Notify      bool      `json:"notify"`
	Frequency   string    `json:"frequency,omitempty"`
}

// CalendarEventRequest holds parameters for creating or updating a calendar
// event.
type CalendarEventRequest struct {
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Location  string     `json:"location,omitempty"`
	Category  string     `json:"category,omitempty"`
}

// ShareInput is one member's portion of a submitted expense.
type ShareInput struct {
	UserID      int64 `json:"userId"`
	ShareAmount Money `json:"shareAmount"`
}

// ExpenseRequest holds a new or edited expense. Shares must sum to
// TotalAmount within the accepted tolerance; the client validates this
// before issuing any network call.
type ExpenseRequest struct {
	Description  string       `json:"description,omitempty"`
	TotalAmount  Money        `json:"totalAmount"`
	Currency     string       `json:"currency"`
	ExpenseDate  *time.Time   `json:"expenseDate"`
	PaidByUserID int64        `json:"paidByUserId"`
	Shares       []ShareInput `json:"shares"`
}
