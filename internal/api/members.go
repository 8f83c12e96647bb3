package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/frly/client-go/internal/types"
)

// ListMembers returns the approved members of a group. The member set
// drives the EVERYONE split and the edit-mode strategy inference.
func ListMembers(ctx context.Context, httpClient *http.Client, baseURL string, groupID int64) ([]types.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/%d/members", baseURL, groupID)
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
		return nil, fmt.Errorf("list members: status %d", resp.StatusCode)
	}

	var members []types.Member
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, err
	}
	return members, nil
}
