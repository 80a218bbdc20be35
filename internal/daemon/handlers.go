package daemon

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
)

// uploadResponse summarises an ingestion
type uploadResponse struct {
	SnapshotID     string             `json:"snapshot_id"`
	Source         string             `json:"source"`
	Records        int                `json:"records"`
	Skipped        int                `json:"skipped"`
	MissingColumns []string           `json:"missing_columns"`
	Dashboard      *tracker.Dashboard `json:"dashboard,omitempty"`
}

type commentRequest struct {
	Message string `json:"message"`
	Author  string `json:"author"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

// handleUpload accepts a multipart "file" field or a raw CSV body.
// An empty upload loads the default dataset instead.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name, text, err := s.readUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(text) == "" {
		s.ingestDefault(w, r)
		return
	}

	snap, err := s.svc.Upload(r.Context(), name, text)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.metrics.IncUploads()
	s.metrics.AddSkippedRows(len(snap.Skipped))
	s.writeSnapshot(w, r, snap)
}

func (s *Server) handleIngestDefault(w http.ResponseWriter, r *http.Request) {
	s.ingestDefault(w, r)
}

func (s *Server) ingestDefault(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.LoadDefault(r.Context())
	if err != nil {
		s.metrics.IncFetchFailures()
		s.writeServiceError(w, err)
		return
	}

	s.metrics.IncDefaultLoads()
	s.metrics.AddSkippedRows(len(snap.Skipped))
	s.writeSnapshot(w, r, snap)
}

func (s *Server) writeSnapshot(w http.ResponseWriter, r *http.Request, snap *dataset.Snapshot) {
	dash, err := s.svc.Dashboard(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		SnapshotID:     snap.ID,
		Source:         snap.Source,
		Records:        snap.Len(),
		Skipped:        len(snap.Skipped),
		MissingColumns: snap.MissingColumns,
		Dashboard:      dash,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.svc.Dashboard(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleBucket(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	view, err := s.svc.Bucket(r.Context(), category, r.URL.Query().Get("group_by"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	results, err := s.svc.Classifications(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// commentsSuffix marks a comment listing under /api/tasks/{key}
const commentsSuffix = "/comments"

// handleTaskGet serves a task detail, or its comments when the path ends in
// /comments. A task whose own key ends in /comments takes precedence.
func (s *Server) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	detail, err := s.svc.TaskDetail(r.Context(), key)
	if errors.Is(err, tracker.ErrTaskNotFound) {
		if base, ok := strings.CutSuffix(key, commentsSuffix); ok {
			s.listComments(w, r, base)
			return
		}
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request, key string) {
	comments, err := s.svc.ListComments(r.Context(), key)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	body := http.MaxBytesReader(w, r.Body, 64<<10)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	comment, err := s.svc.AddComment(r.Context(), tracker.AddCommentRequest{
		TaskKey: mux.Vars(r)["key"],
		Message: req.Message,
		Author:  req.Author,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.metrics.IncCommentsAdded()
	writeJSON(w, http.StatusCreated, comment)
}

// ============================================================================
// Helpers
// ============================================================================

// readUpload extracts a file name and CSV text from the request
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
			return "", "", err
		}
		file, header, err := r.FormFile("file")
		if errors.Is(err, http.ErrMissingFile) {
			return "", "", nil
		}
		if err != nil {
			return "", "", err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", err
		}
		return header.Filename, string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", "", err
	}
	return r.URL.Query().Get("name"), string(data), nil
}

// writeServiceError maps service errors to HTTP status codes
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case tracker.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, tracker.ErrTaskNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dataset.ErrFetchFailed), errors.Is(err, dataset.ErrNoDefaultURL):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeError(w, status, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
