package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// SectionType identifies the content kind of a section. The set is closed;
// a section's type never changes after creation.
type SectionType string

const (
	SectionNote     SectionType = "NOTE"
	SectionList     SectionType = "LIST"
	SectionGallery  SectionType = "GALLERY"
	SectionReminder SectionType = "REMINDER"
	SectionPayment  SectionType = "PAYMENT"
	SectionFolder   SectionType = "FOLDER"
	SectionCalendar SectionType = "CALENDAR"
)

// Section is a typed content container within a group. Sections form a
// forest: ParentID points at another section of the same group, roots have
// no parent.
type Section struct {
	ID       int64       `json:"id"`
	Title    string      `json:"title"`
	Type     SectionType `json:"type"`
	Position int         `json:"position,omitempty"`
	ParentID *int64      `json:"parentId,omitempty"`
}

// Note is the shared text document of a NOTE section. Version implements
// optimistic locking: a save carrying a stale version is rejected with a
// conflict.
type Note struct {
	SectionID        int64      `json:"sectionId"`
	Content          string     `json:"content"`
	Version          int64      `json:"version"`
	LastEditedAt     *time.Time `json:"lastEditedAt,omitempty"`
	LastEditedByName string     `json:"lastEditedByName,omitempty"`
}

// ListItem is a single checklist entry of a LIST section.
type ListItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Reminder belongs to a REMINDER section.
type Reminder struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TriggerTime time.Time `json:"triggerTime"`
	IsSent      bool      `json:"isSent"`
	Notify      bool      `json:"notify"`
	Frequency   string    `json:"frequency,omitempty"`
}

// GalleryItem is a stored file of a GALLERY section. Upload and storage are
// handled by an external service; the client only reads metadata.
type GalleryItem struct {
	ID          int64  `json:"id"`
	SectionID   int64  `json:"sectionId"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize,omitempty"`
	Title       string `json:"title,omitempty"`
}

// CalendarEvent belongs to a CALENDAR section.
type CalendarEvent struct {
	ID        int64      `json:"id"`
	SectionID int64      `json:"sectionId"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Location  string     `json:"location,omitempty"`
	Category  string     `json:"category,omitempty"`
}

// Member is an approved member of a group.
type Member struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	PfpURL    string `json:"pfpUrl,omitempty"`
}

// Share is one member's portion of a recorded expense.
type Share struct {
	UserID      int64  `json:"userId"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	ShareAmount Money  `json:"shareAmount"`
}

// Expense is a recorded shared expense of a PAYMENT section. The invariant
// sum(shares) == totalAmount holds within a tolerance of 0.01.
type Expense struct {
	ID              int64      `json:"id"`
	SectionID       int64      `json:"sectionId"`
	Description     string     `json:"description,omitempty"`
	TotalAmount     Money      `json:"totalAmount"`
	Currency        string     `json:"currency"`
	ExpenseDate     *time.Time `json:"expenseDate,omitempty"`
	PaidByUserID    int64      `json:"paidByUserId"`
	PaidByFirstName string     `json:"paidByFirstName,omitempty"`
	PaidByLastName  string     `json:"paidByLastName,omitempty"`
	Shares          []Share    `json:"shares"`
}

// Balance is a member's net position across all expenses of a PAYMENT
// section. Positive means the group owes the member, negative means the
// member owes the group. Computed server-side.
type Balance struct {
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Balance   Money  `json:"balance"`
}
