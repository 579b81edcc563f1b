package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iffertmedia/dashboard-backend/internal/service"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// CatalogController serves the remaining public collections: products,
// creators, exclusive campaigns, texts and notifications.
type CatalogController struct {
	Store *store.Store
	Admin *service.AdminService
}

func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       c.Store.Products(),
		"syncStatus": c.Store.Status()[store.TopicProducts],
	})
}

func (c *CatalogController) ListCreators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       c.Store.Creators(),
		"syncStatus": c.Store.Status()[store.TopicCreators],
	})
}

func (c *CatalogController) GetCreator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, creator := range c.Store.Creators() {
		if creator.ID == id {
			writeJSON(w, http.StatusOK, creator)
			return
		}
	}
	http.Error(w, "creator not found", http.StatusNotFound)
}

// CollabLink builds the collaboration-request mailto for a creator.
func (c *CatalogController) CollabLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	link, err := c.Admin.CollabLink(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

func (c *CatalogController) ListFeaturedCreators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": c.Store.FeaturedCreators(),
	})
}

func (c *CatalogController) ListExclusiveCampaigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       c.Store.ExclusiveCampaigns(),
		"syncStatus": c.Store.Status()[store.TopicExclusives],
	})
}

// ListTexts returns all admin texts, or one resolved key when ?key= and
// ?default= are supplied.
func (c *CatalogController) ListTexts(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		content := c.Admin.TextOrDefault(key, r.URL.Query().Get("default"))
		writeJSON(w, http.StatusOK, map[string]string{"key": key, "content": content})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": c.Store.AdminTexts()})
}

// ListNotifications returns the notifications from the last 30 days, newest
// first, with the unread count.
func (c *CatalogController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	active := c.Admin.ActiveNotifications()
	unread := 0
	for _, n := range active {
		if !n.IsRead {
			unread++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":   active,
		"unread": unread,
	})
}

func (c *CatalogController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := c.Admin.MarkNotificationRead(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *CatalogController) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Store.Status())
}
