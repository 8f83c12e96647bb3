package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListReminders returns all reminders of a REMINDER section.
func ListReminders(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.Reminder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/reminders", baseURL, sectionID)
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
		return nil, fmt.Errorf("list reminders: status %d", resp.StatusCode)
	}

	var reminders []types.Reminder
	if err := json.NewDecoder(resp.Body).Decode(&reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// AddReminder creates a reminder and returns its id.
func AddReminder(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64, req types.ReminderRequest) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/reminders", baseURL, sectionID)
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
		return 0, fmt.Errorf("add reminder: status %d", resp.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateReminder replaces a reminder's fields.
func UpdateReminder(ctx context.Context, httpClient *http.Client, baseURL string, reminderID int64, req types.ReminderRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/reminders/%d", baseURL, reminderID)
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
		return fmt.Errorf("update reminder: status %d", resp.StatusCode)
	}
}

// DeleteReminder removes a reminder.
func DeleteReminder(ctx context.Context, httpClient *http.Client, baseURL string, reminderID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/reminders/%d", baseURL, reminderID)
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
		return fmt.Errorf("delete reminder: status %d", resp.StatusCode)
	}
}
