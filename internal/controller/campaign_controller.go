package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iffertmedia/dashboard-backend/internal/service"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// CampaignController serves the public campaign views.
type CampaignController struct {
	Store *store.Store
	Admin *service.AdminService
}

// ListCampaigns projects the canonical list through the requested filter and
// search query. The response carries the sync status so clients can flag
// fallback data.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := service.ParseFilter(r.URL.Query().Get("filter"))
	query := r.URL.Query().Get("q")

	campaigns := service.ProjectCampaigns(c.Store.Campaigns(), filter, query)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       campaigns,
		"filter":     filter,
		"syncStatus": c.Store.Status()[store.TopicCampaigns],
	})
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, campaign := range c.Store.Campaigns() {
		if campaign.ID == id {
			writeJSON(w, http.StatusOK, campaign)
			return
		}
	}
	http.Error(w, "campaign not found", http.StatusNotFound)
}

// JoinLink resolves the URL to open when a creator wants to join a campaign.
func (c *CampaignController) JoinLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	link, err := c.Admin.JoinLink(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}
