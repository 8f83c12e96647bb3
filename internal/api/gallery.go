package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListGalleryItems returns file metadata of a GALLERY section. Upload and
// download go through the external storage service, not this client.
func ListGalleryItems(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) ([]types.GalleryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/gallery", baseURL, sectionID)
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
		return nil, fmt.Errorf("list gallery items: status %d", resp.StatusCode)
	}

	var items []types.GalleryItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
