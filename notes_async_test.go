package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestSaveNoteRoundTrip(t *testing.T) {
	var saves int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		atomic.AddInt64(&saves, 1)
		_ = json.NewEncoder(w).Encode(Note{SectionID: 5, Content: "v2", Version: 2})
	}))
	defer srv.Close()

	c := New(srv.URL, NewSession("tok", 1))
	defer func() { _ = c.Close() }()

	ack, err := c.SaveNote(context.Background(), 5, SaveNoteRequest{Content: "v2"})
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if ack.Status != "enqueued" {
		t.Fatalf("unexpected ack: %+v", ack)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.AwaitConsistency(ctx, 5); err != nil {
		t.Fatalf("await: %v", err)
	}
	if atomic.LoadInt64(&saves) != 1 {
		t.Fatalf("save not flushed to server (%d)", atomic.LoadInt64(&saves))
	}
}

func TestSaveNoteConflictReachesErrorHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"NOTE_CONFLICT","message":"stale version","latestNote":{"sectionId":5,"content":"winner","version":9}}`))
	}))
	defer srv.Close()

	conflicts := make(chan error, 1)
	c := New(srv.URL, NewSession("tok", 1), WithSaveErrorHandler(func(err error) {
		select {
		case conflicts <- err:
		default:
		}
	}))
	defer func() { _ = c.Close() }()

	version := int64(8)
	if _, err := c.SaveNote(context.Background(), 5, SaveNoteRequest{Content: "loser", Version: &version}); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}

	select {
	case err := <-conflicts:
		var conflict *NoteConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("handler error = %v, want NoteConflictError", err)
		}
		if conflict.Latest == nil || conflict.Latest.Version != 9 {
			t.Fatalf("winning note not carried: %+v", conflict.Latest)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("error handler never invoked")
	}
}
