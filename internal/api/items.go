package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListItems returns all checklist entries of a LIST section.
func ListItems(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.ListItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/items", baseURL, sectionID)
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
		return nil, fmt.Errorf("list items: status %d", resp.StatusCode)
	}

	var items []types.ListItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem appends a checklist entry and returns its id.
func AddItem(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64, req types.CreateListItemRequest) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/items", baseURL, sectionID)
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
		return 0, fmt.Errorf("add item: status %d", resp.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ToggleItem flips an entry's completed flag.
func ToggleItem(ctx context.Context, httpClient *http.Client, baseURL string, itemID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/items/%d/toggle", baseURL, itemID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, nil)
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
		return fmt.Errorf("toggle item: status %d", resp.StatusCode)
	}
}
