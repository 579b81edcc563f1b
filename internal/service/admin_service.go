package service

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/iffertmedia/dashboard-backend/internal/errors"
	"github.com/iffertmedia/dashboard-backend/internal/events"
	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/repository"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// AdminService applies admin mutations to the store. Every mutation replaces
// the whole affected list synchronously, persists the campaign override
// snapshot when a database is configured, and emits an audit event.
type AdminService struct {
	Store        *store.Store
	Repo         repository.OverrideRepositoryInterface // nil when no database is configured
	Events       events.Publisher
	Log          *zap.Logger
	SupportEmail string
}

// ValidationError reports a missing required field on an admin form; the
// mutation is rejected before any write.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// ====================== Campaign overrides ======================

func (s *AdminService) UpdateCampaignStatus(id string, isActive bool) (model.Campaign, error) {
	return s.mutateCampaign(id, events.TypeCampaignStatusUpdated, func(c *model.Campaign) {
		c.IsActive = isActive
	})
}

func (s *AdminService) UpdateCampaignMoreInfoOptions(id string, options model.MoreInfoOptions) (model.Campaign, error) {
	return s.mutateCampaign(id, events.TypeCampaignOptionsUpdated, func(c *model.Campaign) {
		opts := options
		c.MoreInfoOptions = &opts
	})
}

func (s *AdminService) UpdateCampaignMoreNotes(id, notes string) (model.Campaign, error) {
	return s.mutateCampaign(id, events.TypeCampaignNotesUpdated, func(c *model.Campaign) {
		c.MoreNotes = notes
	})
}

// mutateCampaign locates a campaign by ID, applies fn to a copy and replaces
// the list. Unknown IDs leave the store untouched.
func (s *AdminService) mutateCampaign(id, eventType string, fn func(*model.Campaign)) (model.Campaign, error) {
	campaigns := s.Store.Campaigns()
	for i := range campaigns {
		if campaigns[i].ID != id {
			continue
		}
		fn(&campaigns[i])
		s.Store.SetCampaigns(campaigns)
		s.persistOverride(campaigns[i])
		s.publish(events.Event{
			Type:       eventType,
			CampaignID: campaigns[i].ID,
			Title:      campaigns[i].Title,
			OccurredAt: time.Now(),
		})
		return campaigns[i], nil
	}
	return model.Campaign{}, appErrors.NewCampaignNotFound(id)
}

// ====================== Campaign CRUD ======================

func (s *AdminService) AddCampaign(input model.Campaign) (model.Campaign, error) {
	if err := validateCampaign(input); err != nil {
		return model.Campaign{}, err
	}

	c := input
	c.ID = model.NewID()
	c.AdminCreated = true
	if c.TotalCommission == 0 {
		c.TotalCommission = 15
	}
	if c.AverageRating == 0 {
		c.AverageRating = model.DefaultAverageRating
	}
	if c.StartDate == "" {
		c.StartDate = time.Now().Format("2006-01-02")
	}

	campaigns := append(s.Store.Campaigns(), c)
	s.Store.SetCampaigns(campaigns)
	s.persistOverride(c)
	s.publish(events.Event{
		Type:       events.TypeCampaignCreated,
		CampaignID: c.ID,
		Title:      c.Title,
		OccurredAt: time.Now(),
	})
	return c, nil
}

func (s *AdminService) UpdateCampaign(id string, input model.Campaign) (model.Campaign, error) {
	if err := validateCampaign(input); err != nil {
		return model.Campaign{}, err
	}
	return s.mutateCampaign(id, events.TypeCampaignUpdated, func(c *model.Campaign) {
		updated := input
		updated.ID = c.ID
		updated.AdminCreated = c.AdminCreated
		*c = updated
	})
}

func (s *AdminService) DeleteCampaign(id string) error {
	campaigns := s.Store.Campaigns()
	for i, c := range campaigns {
		if c.ID != id {
			continue
		}
		s.Store.SetCampaigns(append(campaigns[:i], campaigns[i+1:]...))
		if s.Repo != nil {
			if err := s.Repo.Delete(c.Title); err != nil {
				s.Log.Warn("override delete failed", zap.String("title", c.Title), zap.Error(err))
			}
		}
		s.publish(events.Event{
			Type:       events.TypeCampaignDeleted,
			CampaignID: c.ID,
			Title:      c.Title,
			OccurredAt: time.Now(),
		})
		return nil
	}
	return appErrors.NewCampaignNotFound(id)
}

func validateCampaign(c model.Campaign) error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return &ValidationError{Field: "title"}
	case strings.TrimSpace(c.SellerName) == "":
		return &ValidationError{Field: "sellerName"}
	case strings.TrimSpace(c.Description) == "":
		return &ValidationError{Field: "description"}
	}
	return nil
}

// ====================== Products & creators ======================
// Whole-record replace by ID; no override merge applies to these.

func (s *AdminService) AddProduct(input model.Product) (model.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Product{}, &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(input.ShopName) == "" {
		return model.Product{}, &ValidationError{Field: "shopName"}
	}
	p := input
	p.ID = model.NewID()
	s.Store.SetProducts(append(s.Store.Products(), p))
	return p, nil
}

func (s *AdminService) ReplaceProduct(id string, input model.Product) (model.Product, error) {
	products := s.Store.Products()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		input.ID = id
		products[i] = input
		s.Store.SetProducts(products)
		return input, nil
	}
	return model.Product{}, appErrors.NewProductNotFound(id)
}

func (s *AdminService) DeleteProduct(id string) error {
	products := s.Store.Products()
	for i, p := range products {
		if p.ID == id {
			s.Store.SetProducts(append(products[:i], products[i+1:]...))
			return nil
		}
	}
	return appErrors.NewProductNotFound(id)
}

func (s *AdminService) AddCreator(input model.Creator) (model.Creator, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Creator{}, &ValidationError{Field: "name"}
	}
	c := input
	c.ID = model.NewID()
	s.Store.SetCreators(append(s.Store.Creators(), c))
	return c, nil
}

func (s *AdminService) ReplaceCreator(id string, input model.Creator) (model.Creator, error) {
	creators := s.Store.Creators()
	for i := range creators {
		if creators[i].ID != id {
			continue
		}
		input.ID = id
		creators[i] = input
		s.Store.SetCreators(creators)
		return input, nil
	}
	return model.Creator{}, appErrors.NewCreatorNotFound(id)
}

func (s *AdminService) DeleteCreator(id string) error {
	creators := s.Store.Creators()
	for i, c := range creators {
		if c.ID == id {
			s.Store.SetCreators(append(creators[:i], creators[i+1:]...))
			return nil
		}
	}
	return appErrors.NewCreatorNotFound(id)
}

// ====================== Admin texts ======================

var defaultTexts = []model.AdminText{
	{Key: "homepage-header", Content: "Welcome Back", Location: "homepage"},
	{Key: "homepage-subtitle", Content: "Discover the latest products and campaigns", Location: "homepage"},
	{Key: "homepage-products-title", Content: "Amazing Products", Location: "homepage"},
	{Key: "creators-header", Content: "Creator Showcase", Location: "creator-showcase"},
	{Key: "creators-subtitle", Content: "Top creators ready to collaborate", Location: "creator-showcase"},
	{Key: "dashboard-welcome", Content: "Iffert Media Dashboard", Location: "dashboard"},
}

// InitializeDefaultTexts seeds any missing default keys without touching
// existing content.
func (s *AdminService) InitializeDefaultTexts() {
	texts := s.Store.AdminTexts()
	have := make(map[string]bool, len(texts))
	for _, t := range texts {
		have[t.Key] = true
	}

	added := false
	for _, d := range defaultTexts {
		if have[d.Key] {
			continue
		}
		d.ID = model.NewID()
		texts = append(texts, d)
		added = true
	}
	if added {
		s.Store.SetAdminTexts(texts)
	}
}

func (s *AdminService) UpdateAdminText(id, content string) (model.AdminText, error) {
	texts := s.Store.AdminTexts()
	for i := range texts {
		if texts[i].ID != id {
			continue
		}
		texts[i].Content = content
		s.Store.SetAdminTexts(texts)
		return texts[i], nil
	}
	return model.AdminText{}, appErrors.NewTextNotFound(id)
}

func (s *AdminService) AddAdminText(key, content, location string) (model.AdminText, error) {
	if strings.TrimSpace(key) == "" {
		return model.AdminText{}, &ValidationError{Field: "key"}
	}
	t := model.AdminText{ID: model.NewID(), Key: key, Content: content, Location: location}
	s.Store.SetAdminTexts(append(s.Store.AdminTexts(), t))
	return t, nil
}

// TextOrDefault resolves a content key, falling back to the caller's default
// when the key is absent or empty.
func (s *AdminService) TextOrDefault(key, fallback string) string {
	for _, t := range s.Store.AdminTexts() {
		if t.Key == key && t.Content != "" {
			return t.Content
		}
	}
	return fallback
}

// ====================== Notifications ======================

func (s *AdminService) AddNotification(title, message string) model.Notification {
	n := model.Notification{
		ID:        model.NewID(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.Store.SetNotifications(append(s.Store.Notifications(), n))
	return n
}

// ActiveNotifications returns notifications from the last 30 days, newest
// first.
func (s *AdminService) ActiveNotifications() []model.Notification {
	cutoff := time.Now().AddDate(0, 0, -30)
	var active []model.Notification
	for _, n := range s.Store.Notifications() {
		if n.CreatedAt.After(cutoff) {
			active = append(active, n)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active
}

func (s *AdminService) MarkNotificationRead(id string) error {
	notifications := s.Store.Notifications()
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].IsRead = true
			s.Store.SetNotifications(notifications)
			return nil
		}
	}
	return appErrors.NewTextNotFound(id)
}

// ====================== Settings, export, clear ======================

func (s *AdminService) UpdateSettings(settings store.Settings) {
	s.Store.SetSettings(settings)
}

// Export serializes the full in-memory state for download.
func (s *AdminService) Export() store.Export {
	return s.Store.Snapshot()
}

// ClearAll wipes products, campaigns and creators. Destructive, admin-only.
func (s *AdminService) ClearAll() {
	s.Store.SetProducts([]model.Product{})
	s.Store.SetCampaigns([]model.Campaign{})
	s.Store.SetCreators([]model.Creator{})
}

// ====================== External links ======================

// JoinLink resolves the URL a creator should open to join a campaign: the
// campaign's own link when present, otherwise a templated mailto to the
// seller's contact address (or the support address).
func (s *AdminService) JoinLink(campaignID string) (string, error) {
	for _, c := range s.Store.Campaigns() {
		if c.ID != campaignID {
			continue
		}
		if c.CampaignLink != "" {
			return c.CampaignLink, nil
		}

		to := c.ContactEmail
		if to == "" {
			to = s.SupportEmail
		}
		subject := fmt.Sprintf("Campaign Application - %s", c.Title)
		body := fmt.Sprintf(
			"Hi %s,\n\nI would like to join the %q campaign.\n\nPlease let me know the next steps.\n\nThank you!",
			c.SellerName, c.Title)
		return mailtoURL(to, subject, body), nil
	}
	return "", appErrors.NewCampaignNotFound(campaignID)
}

// CollabLink builds the collaboration-request mailto for a creator.
func (s *AdminService) CollabLink(creatorID string) (string, error) {
	for _, c := range s.Store.Creators() {
		if c.ID != creatorID {
			continue
		}
		subject := fmt.Sprintf("Collaboration Request - %s (%s)", c.Name, c.TikTokHandle)
		body := fmt.Sprintf(
			"Hi Iffert Media,\n\nI would like to request a collaboration with %s (%s).\n\nPlease let me know the next steps.\n\nThank you!",
			c.Name, c.TikTokHandle)
		return mailtoURL(s.SupportEmail, subject, body), nil
	}
	return "", appErrors.NewCreatorNotFound(creatorID)
}

func mailtoURL(to, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, uriEscape(subject), uriEscape(body))
}

// uriEscape percent-encodes like encodeURIComponent: spaces become %20, not +.
func uriEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (s *AdminService) persistOverride(c model.Campaign) {
	if s.Repo == nil {
		return
	}
	err := s.Repo.Save(repository.Override{
		Title:     c.Title,
		IsActive:  c.IsActive,
		MoreInfo:  c.MoreInfoOptions,
		MoreNotes: c.MoreNotes,
	})
	if err != nil {
		s.Log.Warn("override persist failed", zap.String("title", c.Title), zap.Error(err))
	}
}

func (s *AdminService) publish(e events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(events.QueueName, e); err != nil {
		s.Log.Warn("event publish failed", zap.String("type", e.Type), zap.Error(err))
	}
}
