package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/auth"
	"github.com/iffertmedia/dashboard-backend/internal/config"
	"github.com/iffertmedia/dashboard-backend/internal/controller"
	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/service"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// testServer wires the controllers onto a chi router the same way cmd/server
// does, minus the sheets sync loop and external integrations.
func testServer(t *testing.T) (*httptest.Server, *store.Store, *auth.Service) {
	t.Helper()

	st := store.New()
	adminService := &service.AdminService{
		Store:        st,
		Log:          zap.NewNop(),
		SupportEmail: "hello@iffertmedia.com",
	}
	adminService.InitializeDefaultTexts()

	authService := auth.NewService(config.Auth{
		AdminUsername: "admin",
		AdminPassword: "iffert2024",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})

	campaignController := &controller.CampaignController{Store: st, Admin: adminService}
	catalogController := &controller.CatalogController{Store: st, Admin: adminService}
	authController := &controller.AuthController{Auth: authService}
	adminController := &controller.AdminController{Admin: adminService}

	r := chi.NewRouter()
	r.Post("/auth/login", authController.Login)
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Get("/campaigns/{id}/join-link", campaignController.JoinLink)
	r.Get("/products", catalogController.ListProducts)
	r.Get("/creators/{id}/collab-link", catalogController.CollabLink)
	r.Get("/texts", catalogController.ListTexts)
	r.Get("/notifications", catalogController.ListNotifications)
	r.Put("/notifications/{id}/read", catalogController.MarkNotificationRead)
	r.Get("/status", catalogController.Status)

	r.Route("/admin", func(r chi.Router) {
		r.Use(authService.RequireAdmin)
		r.Get("/export", adminController.Export)
		r.Post("/campaigns", adminController.CreateCampaign)
		r.Delete("/campaigns/{id}", adminController.DeleteCampaign)
		r.Patch("/campaigns/{id}/status", adminController.UpdateCampaignStatus)
		r.Put("/campaigns/{id}/notes", adminController.UpdateCampaignNotes)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st, authService
}

func adminToken(t *testing.T, authService *auth.Service) string {
	t.Helper()
	token, err := authService.Login("admin", "iffert2024")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestListCampaignsFilterAndSearch(t *testing.T) {
	srv, st, _ := testServer(t)
	st.SetCampaigns([]model.Campaign{
		{ID: "1700000000000.1", Title: "Glow Serum Launch", SellerName: "Lumina Skincare", IsActive: true},
		{ID: "1600000000000.2", Title: "Summer Sale", SellerName: "Coastal Threads", IsActive: false},
	})
	st.RecordSync(store.TopicCampaigns, true)

	resp := doJSON(t, http.MethodGet, srv.URL+"/campaigns?filter=active&q=glow", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data   []model.Campaign `json:"data"`
		Filter string           `json:"filter"`
		Sync   store.SyncStatus `json:"syncStatus"`
	}
	decode(t, resp, &body)

	require.Len(t, body.Data, 1)
	assert.Equal(t, "Glow Serum Launch", body.Data[0].Title)
	assert.Equal(t, "active", body.Filter)
	assert.True(t, body.Sync.Fallback)
}

func TestGetCampaignNotFound(t *testing.T) {
	srv, _, _ := testServer(t)
	resp := doJSON(t, http.MethodGet, srv.URL+"/campaigns/missing", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJoinLinkEndpoint(t *testing.T) {
	srv, st, _ := testServer(t)
	st.SetCampaigns([]model.Campaign{
		{ID: "c1", Title: "Summer Sale", SellerName: "Coastal Threads"},
	})

	resp := doJSON(t, http.MethodGet, srv.URL+"/campaigns/c1/join-link", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["url"], "mailto:hello@iffertmedia.com")
}

func TestLoginFlow(t *testing.T) {
	srv, _, _ := testServer(t)

	// Missing fields.
	resp := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{"username": "admin"})
	var body map[string]interface{}
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please enter both username and password", body["error"])

	// Wrong password.
	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Invalid username or password", body["error"])

	// Success.
	resp = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{"username": "admin", "password": "iffert2024"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv, _, _ := testServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/admin/export", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/export", "garbage-token", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminStatusOverrideVisibleInPublicList(t *testing.T) {
	srv, st, authService := testServer(t)
	st.SetCampaigns([]model.Campaign{
		{ID: "c1", Title: "Summer Sale", SellerName: "Coastal Threads", IsActive: true},
	})
	token := adminToken(t, authService)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/admin/campaigns/c1/status", token,
		map[string]bool{"isActive": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Campaign
	decode(t, resp, &updated)
	assert.False(t, updated.IsActive)

	resp = doJSON(t, http.MethodGet, srv.URL+"/campaigns?filter=ended", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Data []model.Campaign `json:"data"`
	}
	decode(t, resp, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "c1", list.Data[0].ID)
}

func TestAdminStatusOverrideUnknownID(t *testing.T) {
	srv, _, authService := testServer(t)
	token := adminToken(t, authService)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/admin/campaigns/missing/status", token,
		map[string]bool{"isActive": false})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCampaignValidation(t *testing.T) {
	srv, st, authService := testServer(t)
	token := adminToken(t, authService)

	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/campaigns", token,
		map[string]string{"title": "Missing Everything Else"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, st.Campaigns())

	resp = doJSON(t, http.MethodPost, srv.URL+"/admin/campaigns", token, map[string]string{
		"title":       "Local Only Launch",
		"sellerName":  "Iffert Media",
		"description": "Hand-picked campaign",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Campaign
	decode(t, resp, &created)
	assert.True(t, created.AdminCreated)
	require.Len(t, st.Campaigns(), 1)
}

func TestExportDownloadHeaders(t *testing.T) {
	srv, st, authService := testServer(t)
	st.SetCampaigns([]model.Campaign{{ID: "c1", Title: "Summer Sale"}})
	token := adminToken(t, authService)

	resp := doJSON(t, http.MethodGet, srv.URL+"/admin/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "iffert-dashboard-export.json")

	var export store.Export
	decode(t, resp, &export)
	require.Len(t, export.Campaigns, 1)
	assert.Equal(t, "Iffert Media", export.Settings.CompanyName)
}

func TestTextResolutionEndpoint(t *testing.T) {
	srv, _, _ := testServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/texts?key=homepage-header&default=Hi", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Welcome Back", body["content"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/texts?key=unknown&default=Hi", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Hi", body["content"])
}

func TestNotificationsEndpointCountsUnread(t *testing.T) {
	srv, st, _ := testServer(t)
	st.SetNotifications([]model.Notification{
		{ID: "n1", Title: "Fresh", CreatedAt: time.Now(), IsRead: false},
		{ID: "n2", Title: "Seen", CreatedAt: time.Now().Add(-time.Hour), IsRead: true},
		{ID: "n3", Title: "Ancient", CreatedAt: time.Now().AddDate(0, 0, -60)},
	})

	resp := doJSON(t, http.MethodGet, srv.URL+"/notifications", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data   []model.Notification `json:"data"`
		Unread int                  `json:"unread"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Fresh", body.Data[0].Title)
	assert.Equal(t, 1, body.Unread)

	resp = doJSON(t, http.MethodPut, srv.URL+"/notifications/n1/read", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/notifications", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, 0, body.Unread)
}

func TestStatusEndpoint(t *testing.T) {
	srv, st, _ := testServer(t)
	st.RecordSync(store.TopicCampaigns, false)
	st.RecordSync(store.TopicProducts, true)

	resp := doJSON(t, http.MethodGet, srv.URL+"/status", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]store.SyncStatus
	decode(t, resp, &body)
	assert.False(t, body["campaigns"].Fallback)
	assert.True(t, body["products"].Fallback)
}
