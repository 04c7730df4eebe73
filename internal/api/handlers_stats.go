package api

import "net/http"

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"window":     s.cfg.StatsWindow.String(),
		"operations": s.stats.Snapshot(),
	})
}
