package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/page"
	"github.com/wutup-dev/wutup/pkg/stream"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

const (
	kindEvents = stream.KindEvents
	kindGuests = stream.KindGuests
)

// maxRequestBody caps POST /render and /live messages.
const maxRequestBody = 64 << 10

// RenderRequest asks for one table body. Items, when present, are full
// rows and take precedence over Rows and Names.
type RenderRequest struct {
	Kind      string       `json:"kind"`
	Container string       `json:"container"`
	Rows      *int         `json:"rows,omitempty"`
	Names     []string     `json:"names,omitempty"`
	Items     []stream.Row `json:"items,omitempty"`
}

// ErrorResponse is the JSON body of a failed render.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// build renders req into a fresh page document.
func (s *Server) build(ctx context.Context, req RenderRequest) (*vdom.Document, stream.Kind, error) {
	kind, err := stream.ParseKind(req.Kind)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(req.Container) == "" {
		return nil, kind, errors.New("E060").WithDetail("container is required")
	}

	var doc *vdom.Document
	var count int
	if len(req.Items) > 0 {
		doc, err = page.Build(ctx, s.page, kind, req.Container, req.Items)
		count = len(req.Items)
	} else {
		rowCount := len(req.Names)
		if req.Rows != nil {
			rowCount = *req.Rows
		}
		doc, err = page.BuildNames(ctx, s.page, kind, req.Container, rowCount, req.Names)
		if err == nil {
			count = len(stream.Body(doc, req.Container).Children)
		}
	}
	if err != nil {
		s.metrics.RecordRenderError(string(kind), errors.CodeOf(err))
		return nil, kind, err
	}
	s.metrics.RecordRows(string(kind), count)
	return doc, kind, nil
}

func (s *Server) handlePage(kind stream.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		req, err := requestFromQuery(kind, id, r.URL.Query())
		if err != nil {
			writeTextError(w, err)
			return
		}

		doc, _, err := s.build(r.Context(), req)
		if err != nil {
			writeTextError(w, err)
			return
		}

		title := r.URL.Query().Get("title")
		if title == "" {
			title = page.Heading(kind, id)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Render(w, doc, title, s.page); err != nil {
			s.logger.Warn("page write failed", "path", r.URL.Path, "error", err)
		}
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSONError(w, errors.FromError(err, "E060"))
		return
	}

	html, err := s.fragment(r.Context(), req)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// fragment renders req and returns the new tbody HTML.
func (s *Server) fragment(ctx context.Context, req RenderRequest) (string, error) {
	doc, _, err := s.build(ctx, req)
	if err != nil {
		return "", err
	}
	return page.Fragment(doc, req.Container, s.page.Pretty)
}

// requestFromQuery reads names=a,b and rows=n.
func requestFromQuery(kind stream.Kind, id string, q url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Kind:      string(kind),
		Container: id,
		Names:     SplitNames(q["names"]...),
	}
	if raw := q.Get("rows"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, errors.New("E060").WithDetailf("rows must be an integer, got %q", raw)
		}
		req.Rows = &n
	}
	return req, nil
}

// SplitNames splits comma-separated values and trims each name. An empty
// name between commas keeps its position; a wholly blank value adds nothing.
func SplitNames(values ...string) []string {
	var names []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		for _, n := range strings.Split(v, ",") {
			names = append(names, strings.TrimSpace(n))
		}
	}
	return names
}

// StatusFor maps a render error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, stream.ErrContainerNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, stream.ErrNotTable):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, stream.ErrInsufficientData),
		stderrors.Is(err, stream.ErrInvalidRowCount),
		stderrors.Is(err, stream.ErrUnknownKind):
		return http.StatusBadRequest
	}
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.CodeOf(err) == "E060" {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Code: errors.CodeOf(err)}
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(err))
	json.NewEncoder(w).Encode(errorResponse(err))
}

func writeTextError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusFor(err))
}
