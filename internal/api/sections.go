// Package api contains the HTTP calls behind the public client methods.
// Functions are synchronous unless they take an Executor; authorization and
// group-scope headers are attached by the client's transport, not here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListSections returns all sections of the current group, roots and folder
// children alike, ordered by position.
func ListSections(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections", baseURL)
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
		return nil, fmt.Errorf("list sections: status %d", resp.StatusCode)
	}

	var sections []types.Section
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// CreateSection creates a new section and returns its id.
func CreateSection(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateSectionRequest) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/groups/sections", baseURL)
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
		return 0, fmt.Errorf("create section: status %d", resp.StatusCode)
	}

	var id int64
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteSection removes a section (and, for folders, detaches its children
// server-side).
func DeleteSection(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/groups/sections/%d", baseURL, sectionID)
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
		return fmt.Errorf("delete section: status %d", resp.StatusCode)
	}
}
