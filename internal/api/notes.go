package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	interrors "github.com/frly/client-go/internal/errors"
	"github.com/frly/client-go/internal/job"
	"github.com/frly/client-go/internal/types"
)

// GetNote retrieves a NOTE section's document (synchronous).
func GetNote(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64) (*types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/note", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, types.ErrNotFound
	default:
		return nil, fmt.Errorf("get note: status %d", resp.StatusCode)
	}

	var n types.Note
	if err := json.NewDecoder(resp.Body).Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateNote saves note content synchronously. A 409 from the optimistic
// lock is returned as *types.NoteConflictError carrying the server's
// current note; the retry machinery treats it as irrecoverable.
func UpdateNote(ctx context.Context, httpClient *http.Client, baseURL string, sectionID int64, req types.SaveNoteRequest) (*types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/groups/sections/%d/note", baseURL, sectionID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, interrors.NewNetworkError("update note", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var n types.Note
		if err := json.NewDecoder(resp.Body).Decode(&n); err != nil {
			return nil, err
		}
		return &n, nil

	case http.StatusConflict:
		conflict := &types.NoteConflictError{}
		// Conflict body: {"code":"NOTE_CONFLICT","message":...,"latestNote":...}
		var payload struct {
			Message    string      `json:"message"`
			LatestNote *types.Note `json:"latestNote"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			conflict.Message = payload.Message
			conflict.Latest = payload.LatestNote
		}
		return nil, interrors.WrapIrrecoverable(resp.StatusCode, conflict)

	case http.StatusNotFound:
		return nil, interrors.WrapIrrecoverable(resp.StatusCode, types.ErrNotFound)

	default:
		return nil, interrors.NewHTTPError("update note", resp.StatusCode)
	}
}

// SaveNote submits a note save via the sharded executor, which preserves
// FIFO ordering per section and retries transient failures in the
// background. The returned ack only means the job was enqueued; conflicts
// and exhausted retries are reported through the executor's error handler.
func SaveNote(ctx context.Context, exec types.Executor, httpClient *http.Client, baseURL string, sectionID int64, req types.SaveNoteRequest) (*types.EnqueueAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saveJob := job.New(func(jobCtx context.Context) error {
		_, err := UpdateNote(jobCtx, httpClient, baseURL, sectionID, req)
		return err
	})

	if err := exec.Submit(ctx, sectionKey(sectionID), saveJob); err != nil {
		return nil, err
	}

	return &types.EnqueueAck{SectionID: sectionID, Status: "enqueued"}, nil
}

// sectionKey is the executor sharding key for a section.
func sectionKey(sectionID int64) string { return fmt.Sprintf("%d", sectionID) }
