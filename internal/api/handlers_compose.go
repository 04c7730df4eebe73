package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/notegest/internal/compose"
)

type updateRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	PreserveTitle *bool  `json:"preserve_title"`
}

type appendRequest struct {
	Content      string `json:"content"`
	AddTimestamp *bool  `json:"add_timestamp"`
	AddSeparator *bool  `json:"add_separator"`
}

type noteRequest struct {
	Note     string `json:"note"`
	Type     string `json:"type"`
	Position string `json:"position"`
}

type tableRequest struct {
	CSV      string `json:"csv"`
	Title    string `json:"title"`
	Position string `json:"position"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type replaceRequest struct {
	HTML          string `json:"html"`
	Find          string `json:"find"`
	Replace       string `json:"replace"`
	CaseSensitive bool   `json:"case_sensitive"`
}

type listingRequest struct {
	Pages []compose.PageInfo `json:"pages"`
	Limit int                `json:"limit"`
}

type pageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func writeCommands(w http.ResponseWriter, cmds ...compose.PatchCommand) {
	if cmds == nil {
		cmds = []compose.PatchCommand{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"commands": cmds})
}

// composeError maps validation errors to 400 and anything else to 500.
func composeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, compose.ErrTableTooShort),
		errors.Is(err, compose.ErrUnknownNoteType),
		errors.Is(err, compose.ErrUnknownPosition),
		errors.Is(err, compose.ErrMissingTitle),
		errors.Is(err, compose.ErrMissingContent):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleComposeUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	body := s.composer().UpdateBody(req.Title, req.Content, boolOr(req.PreserveTitle, true), s.now())
	writeCommands(w, compose.ReplaceBodyCommand(body))
}

func (s *Server) handleComposeAppend(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	body := s.composer().AppendBody(req.Content, boolOr(req.AddTimestamp, true), boolOr(req.AddSeparator, true), s.now())
	writeCommands(w, compose.AppendCommand(body))
}

func (s *Server) handleComposeNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	kind, err := compose.ParseNoteType(req.Type)
	if err != nil {
		composeError(w, err)
		return
	}
	pos, err := compose.ParsePosition(req.Position)
	if err != nil {
		composeError(w, err)
		return
	}
	body, err := s.composer().Note(req.Note, kind, s.now())
	if err != nil {
		composeError(w, err)
		return
	}
	writeCommands(w, compose.PositionCommand(pos, body))
}

func (s *Server) handleComposeTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	pos, err := compose.ParsePosition(req.Position)
	if err != nil {
		composeError(w, err)
		return
	}
	body, err := s.composer().TableFromCSV(req.CSV, req.Title)
	if err != nil {
		composeError(w, err)
		return
	}
	writeCommands(w, compose.PositionCommand(pos, body))
}

func (s *Server) handleComposeTitle(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		composeError(w, compose.ErrMissingTitle)
		return
	}
	writeCommands(w, compose.TitleCommand(req.Title))
}

func (s *Server) handleComposeReplace(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}
	if req.Find == "" {
		jsonError(w, "find is required", http.StatusBadRequest)
		return
	}

	updated, n := compose.Replace(req.HTML, req.Find, req.Replace, req.CaseSensitive)
	cmds := []compose.PatchCommand{}
	if n > 0 {
		cmds = append(cmds, compose.ReplaceBodyCommand(compose.ReplaceBody(updated)))
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": n, "commands": cmds})
}

func (s *Server) handleComposePage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}

	doc, err := s.composer().PageDocument(req.Title, req.Content, s.now())
	if err != nil {
		composeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document": doc})
}

func (s *Server) handleComposeListing(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if !decodeJSON(w, r, s.cfg.MaxInputBytes, &req) {
		return
	}
	if len(req.Pages) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"text": "No pages found."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": compose.FormatPageList(req.Pages, req.Limit)})
}
