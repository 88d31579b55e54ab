// Package contactsink is a local stand-in for the hosted contact API.
// It accepts the same JSON body, logs it and answers like the real service.
package contactsink

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"websakha/internal/contact"
	"websakha/internal/jsonutil"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitPath mirrors the hosted endpoint path.
const SubmitPath = "/api/contact/submit-contact"

// maxBodyBytes bounds accepted request bodies.
const maxBodyBytes = 1 << 20

// Submission is one accepted contact request.
type Submission struct {
	ID         string        `json:"id"`
	ReceivedAt time.Time     `json:"received_at"`
	Draft      contact.Draft `json:"draft"`
}

// Archive persists accepted submissions.
type Archive interface {
	Save(id string, v any) error
}

// Records reads back what an Archive wrote.
type Records interface {
	IDs() ([]string, error)
	Load(id string, v any) error
}

// Server receives contact submissions over HTTP and keeps them in memory,
// and in an Archive when one is set.
type Server struct {
	logger  *zap.Logger
	server  *http.Server
	archive Archive

	mu          sync.Mutex
	submissions []Submission
	failWith    int
}

// NewServer creates a sink listening on addr once Serve is called.
func NewServer(addr string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc(SubmitPath, s.handleSubmit)
	mux.HandleFunc("/api/contact/submissions", s.handleList)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the routes, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// SetArchive makes the server write every accepted submission to a.
func (s *Server) SetArchive(a Archive) {
	s.archive = a
}

// Restore loads every archived submission into memory, oldest first, and
// returns how many were loaded.
func (s *Server) Restore(r Records) (int, error) {
	ids, err := r.IDs()
	if err != nil {
		return 0, err
	}
	subs := make([]Submission, 0, len(ids))
	for _, id := range ids {
		var sub Submission
		if err := r.Load(id, &sub); err != nil {
			return 0, err
		}
		subs = append(subs, sub)
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ReceivedAt.Before(subs[j].ReceivedAt)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(subs, s.submissions...)
	return len(subs), nil
}

// FailWith makes every submission answer with status (0 restores normal
// behaviour). Used to rehearse the failure path of the form.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Submissions returns a copy of everything received so far.
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

type response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	ID      string   `json:"id,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// handleSubmit handles POST /api/contact/submit-contact.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	failWith := s.failWith
	s.mu.Unlock()
	if failWith != 0 {
		s.logger.Info("rejecting submission on request", zap.Int("status", failWith))
		writeJSON(w, failWith, response{Message: http.StatusText(failWith)})
		return
	}

	var d contact.Draft
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := jsonutil.DecodeStrict(body, &d, "decode submission"); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: err.Error()})
		return
	}
	if missing := d.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		writeJSON(w, http.StatusBadRequest, response{Message: "required fields missing", Missing: names})
		return
	}

	sub := Submission{ID: uuid.NewString(), ReceivedAt: time.Now(), Draft: d}
	s.mu.Lock()
	s.submissions = append(s.submissions, sub)
	total := len(s.submissions)
	first := s.submissions[0].ReceivedAt
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.Save(sub.ID, sub); err != nil {
			s.logger.Error("archive submission", zap.String("id", sub.ID), zap.Error(err))
		}
	}

	s.logger.Info("contact submission received",
		zap.String("id", sub.ID),
		zap.String("name", d.Name),
		zap.String("email", d.Email),
		zap.String("subject", d.Subject),
		zap.String("message_size", humanize.Bytes(uint64(len(d.Message)))),
		zap.Int("total", total),
		zap.String("first_received", humanize.Time(first)),
	)
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Contact form submitted successfully", ID: sub.ID})
}

// handleList handles GET /api/contact/submissions.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.Submissions())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
