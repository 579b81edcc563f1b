package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/service"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// AdminController serves the authenticated admin mutations.
type AdminController struct {
	Admin *service.AdminService
	Sync  *service.SyncService
}

// ====================== Campaign overrides ======================

func (c *AdminController) UpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.Admin.UpdateCampaignStatus(chi.URLParam(r, "id"), body.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (c *AdminController) UpdateCampaignMoreInfo(w http.ResponseWriter, r *http.Request) {
	var body model.MoreInfoOptions
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.Admin.UpdateCampaignMoreInfoOptions(chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (c *AdminController) UpdateCampaignNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MoreNotes string `json:"moreNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.Admin.UpdateCampaignMoreNotes(chi.URLParam(r, "id"), body.MoreNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// ====================== Campaign CRUD ======================

func (c *AdminController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body model.Campaign
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.Admin.AddCampaign(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (c *AdminController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var body model.Campaign
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.Admin.UpdateCampaign(chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (c *AdminController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := c.Admin.DeleteCampaign(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== Products ======================

func (c *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body model.Product
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product, err := c.Admin.AddProduct(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (c *AdminController) ReplaceProduct(w http.ResponseWriter, r *http.Request) {
	var body model.Product
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product, err := c.Admin.ReplaceProduct(chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := c.Admin.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== Creators ======================

func (c *AdminController) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var body model.Creator
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	creator, err := c.Admin.AddCreator(body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, creator)
}

func (c *AdminController) ReplaceCreator(w http.ResponseWriter, r *http.Request) {
	var body model.Creator
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	creator, err := c.Admin.ReplaceCreator(chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creator)
}

func (c *AdminController) DeleteCreator(w http.ResponseWriter, r *http.Request) {
	if err := c.Admin.DeleteCreator(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ====================== Texts, notifications, settings ======================

func (c *AdminController) CreateText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key      string `json:"key"`
		Content  string `json:"content"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	text, err := c.Admin.AddAdminText(body.Key, body.Content, body.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, text)
}

func (c *AdminController) UpdateText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	text, err := c.Admin.UpdateAdminText(chi.URLParam(r, "id"), body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, text)
}

func (c *AdminController) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Title == "" {
		http.Error(w, "required field missing: title", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, c.Admin.AddNotification(body.Title, body.Message))
}

func (c *AdminController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body store.Settings
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	c.Admin.UpdateSettings(body)
	writeJSON(w, http.StatusOK, body)
}

// ====================== Refresh, export, clear ======================

func (c *AdminController) Refresh(w http.ResponseWriter, r *http.Request) {
	result := c.Sync.RefreshAll(r.Context())
	writeJSON(w, http.StatusOK, result)
}

// Export streams the full in-memory state as a downloadable JSON document.
func (c *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="iffert-dashboard-export.json"`)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(c.Admin.Export())
}

func (c *AdminController) ClearAll(w http.ResponseWriter, r *http.Request) {
	c.Admin.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}
