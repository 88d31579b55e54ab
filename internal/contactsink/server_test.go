package contactsink

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"websakha/internal/archive"
	"websakha/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestServer_HandleSubmit(t *testing.T) {
	s := NewServer(":0", zaptest.NewLogger(t))

	t.Run("POST valid submission", func(t *testing.T) {
		body, _ := json.Marshal(contact.Draft{Name: "Jane", Email: "jane@x.com", Phone: "9998887777", Subject: "Hi", Message: "Test"})
		req := httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		s.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.ID)

		subs := s.Submissions()
		require.Len(t, subs, 1)
		assert.Equal(t, "Jane", subs[0].Draft.Name)
		assert.Equal(t, resp.ID, subs[0].ID)
	})

	t.Run("POST missing fields", func(t *testing.T) {
		body := []byte(`{"name":"","email":"a@b.com","phone":"1","subject":"","message":""}`)
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, []string{"name", "message"}, resp.Missing)
	})

	t.Run("POST invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader([]byte("invalid json"))))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, SubmitPath, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("GET submissions", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact/submissions", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var subs []Submission
		require.NoError(t, json.NewDecoder(w.Body).Decode(&subs))
		assert.Len(t, subs, 1)
	})
}

func TestServer_FailWith(t *testing.T) {
	s := NewServer(":0", nil)
	s.FailWith(http.StatusServiceUnavailable)

	body, _ := json.Marshal(contact.Draft{Name: "Jane", Email: "jane@x.com", Phone: "9998887777", Message: "Test"})
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, s.Submissions())

	s.FailWith(0)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
}

// The real contact client talks to the sink end to end.
func TestServer_WithContactClient(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer(ln.Addr().String(), zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := contact.NewClient("http://"+ln.Addr().String()+SubmitPath, contact.WithTimeout(2*time.Second))
	d := &contact.Draft{Name: "Jane", Email: "jane@x.com", Phone: "9998887777", Subject: "Hi", Message: "Test"}
	res := client.Submit(context.Background(), d)
	assert.True(t, res.OK(), "submit: %v", res.Err)
	assert.True(t, d.IsZero())
	assert.Len(t, s.Submissions(), 1)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_Archive(t *testing.T) {
	store, err := archive.NewStore(t.TempDir())
	require.NoError(t, err)
	s := NewServer(":0", zaptest.NewLogger(t))
	s.SetArchive(store)

	body, _ := json.Marshal(contact.Draft{Name: "Jane", Email: "jane@x.com", Phone: "9998887777", Message: "Test"})
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, SubmitPath, bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	ids, err := store.IDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	var got Submission
	require.NoError(t, store.Load(ids[0], &got))
	assert.Equal(t, s.Submissions()[0].ID, got.ID)
	assert.Equal(t, "Jane", got.Draft.Name)
}

func TestServer_RestoreFromArchive(t *testing.T) {
	store, err := archive.NewStore(t.TempDir())
	require.NoError(t, err)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save("b-later", Submission{ID: "b-later", ReceivedAt: base.Add(time.Hour), Draft: contact.Draft{Name: "Later"}}))
	require.NoError(t, store.Save("z-earlier", Submission{ID: "z-earlier", ReceivedAt: base, Draft: contact.Draft{Name: "Earlier"}}))

	s := NewServer(":0", zaptest.NewLogger(t))
	n, err := s.Restore(store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact/submissions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listed []Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Earlier", listed[0].Draft.Name)
	assert.Equal(t, "Later", listed[1].Draft.Name)
}

func TestServer_RestoreEmptyArchive(t *testing.T) {
	store, err := archive.NewStore(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	s := NewServer(":0", nil)
	n, err := s.Restore(store)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, s.Submissions())
}

func TestServer_RestoreRejectsCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := archive.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err = NewServer(":0", nil).Restore(store)
	assert.Error(t, err)
}
