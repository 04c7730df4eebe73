package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dgallion1/notegest/internal/batch"
	"github.com/dgallion1/notegest/internal/content"
)

// Batch formats accepted by /api/content/batch.
const (
	FormatText     = "text"
	FormatSummary  = "summary"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

type htmlRequest struct {
	HTML      string `json:"html"`
	MaxLength int    `json:"max_length"`
}

type encodeRequest struct {
	Text         string `json:"text"`
	OrderedLists *bool  `json:"ordered_lists"`
	Sanitize     *bool  `json:"sanitize"`
}

type batchRequest struct {
	Format       string   `json:"format"`
	Items        []string `json:"items"`
	MaxLength    int      `json:"max_length"`
	OrderedLists *bool    `json:"ordered_lists"`
	Sanitize     *bool    `json:"sanitize"`
}

type batchItem struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var req htmlRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	var text string
	s.stats.Time(FormatText, func() { text = content.ReadableText(req.HTML) })
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req htmlRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	var summary string
	s.stats.Time(FormatSummary, func() { summary = content.Summarize(req.HTML, s.summaryLength(req.MaxLength)) })
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	var req htmlRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	var md string
	var err error
	s.stats.Time(FormatMarkdown, func() { md, err = content.Markdown(req.HTML) })
	if err != nil {
		s.log.Warn("markdown conversion failed", "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"markdown": md})
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	enc := s.encoder(req.OrderedLists, req.Sanitize)
	var out string
	s.stats.Time(FormatHTML, func() { out = enc.Encode(req.Text) })
	writeJSON(w, http.StatusOK, map[string]string{"html": out})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	convert, err := s.converter(req)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := batch.Map(r.Context(), req.Items, s.cfg.BatchConcurrency, func(_ context.Context, in string) (string, error) {
		var out string
		var err error
		s.stats.Time(req.Format, func() { out, err = convert(in) })
		return out, err
	})

	items := make([]batchItem, len(results))
	for i, res := range results {
		items[i] = batchItem{Output: res.Value}
		if res.Err != nil {
			items[i].Error = res.Err.Error()
		}
	}
	s.log.Info("batch converted", "format", req.Format, "items", len(items))
	writeJSON(w, http.StatusOK, map[string]any{"results": items})
}

// converter picks the conversion for a batch format.
func (s *Server) converter(req batchRequest) (func(string) (string, error), error) {
	switch req.Format {
	case FormatText:
		return func(in string) (string, error) { return content.ReadableText(in), nil }, nil
	case FormatSummary:
		n := s.summaryLength(req.MaxLength)
		return func(in string) (string, error) { return content.Summarize(in, n), nil }, nil
	case FormatMarkdown:
		return content.Markdown, nil
	case FormatHTML:
		enc := s.encoder(req.OrderedLists, req.Sanitize)
		return func(in string) (string, error) { return enc.Encode(in), nil }, nil
	}
	return nil, fmt.Errorf("unknown format %q: want text, summary, markdown or html", req.Format)
}

func (s *Server) summaryLength(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.cfg.SummaryLength
}
