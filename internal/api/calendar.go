package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListCalendarEvents returns all events of a CALENDAR section.
func ListCalendarEvents(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/calendar-events", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list calendar events: status %d", resp.StatusCode)
	}

	var events []types.CalendarEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddCalendarEvent creates an event and returns its id.
func AddCalendarEvent(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64, req types.CalendarEventRequest) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/calendar-events", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("add calendar event: status %d", resp.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateCalendarEvent replaces an event's fields.
func UpdateCalendarEvent(ctx context.Context, httpClient *http.Client, baseURL string, eventID int64, req types.CalendarEventRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/calendar-events/%d", baseURL, eventID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return fmt.Errorf("update calendar event: status %d", resp.StatusCode)
	}
}

// DeleteCalendarEvent removes an event.
func DeleteCalendarEvent(ctx context.Context, httpClient *http.Client, baseURL string, eventID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/calendar-events/%d", baseURL, eventID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return fmt.Errorf("delete calendar event: status %d", resp.StatusCode)
	}
}
