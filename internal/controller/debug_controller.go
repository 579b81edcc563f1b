package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iffertmedia/dashboard-backend/internal/sheets"
)

// DebugController exposes the sheet connection and structure checks from the
// admin debug screen.
type DebugController struct {
	Sheets *sheets.Client
}

func (c *DebugController) FeedInfo(w http.ResponseWriter, r *http.Request) {
	feed := chi.URLParam(r, "feed")
	writeJSON(w, http.StatusOK, c.Sheets.FeedDebugInfo(r.Context(), feed))
}

func (c *DebugController) ValidateFeed(w http.ResponseWriter, r *http.Request) {
	feed := chi.URLParam(r, "feed")
	writeJSON(w, http.StatusOK, c.Sheets.ValidateFeed(r.Context(), feed))
}
