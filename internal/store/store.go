package store

import (
	"sync"
	"time"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

// Topic identifies one collection held by the store, for subscriber
// notifications and sync-status tracking.
type Topic string

const (
	TopicCampaigns     Topic = "campaigns"
	TopicProducts      Topic = "products"
	TopicCreators      Topic = "creators"
	TopicExclusives    Topic = "exclusives"
	TopicAdminTexts    Topic = "adminTexts"
	TopicNotifications Topic = "notifications"
	TopicSettings      Topic = "settings"
)

// SyncStatus reports when a collection was last replaced from its feed and
// whether the fallback dataset was substituted, so views can flag stale data.
type SyncStatus struct {
	LastSynced time.Time `json:"lastSynced"`
	Fallback   bool      `json:"fallback"`
}

// Settings are the app-level values editable from the admin panel.
type Settings struct {
	CompanyName string `json:"companyName"`
	DiscordURL  string `json:"discordUrl"`
}

// Store is the process-wide state container. It lives for the process
// lifetime; every write replaces a whole collection so readers never observe
// a partially merged list.
type Store struct {
	mu sync.RWMutex

	campaigns       []model.Campaign
	products        []model.Product
	creators        []model.Creator
	featured        []model.FeaturedCreator
	exclusives      []model.ExclusiveCampaign
	adminTexts      []model.AdminText
	notifications   []model.Notification
	settings        Settings
	status          map[Topic]SyncStatus

	subMu sync.Mutex
	subs  []func(Topic)
}

func New() *Store {
	return &Store{
		status: make(map[Topic]SyncStatus),
		settings: Settings{
			CompanyName: "Iffert Media",
			DiscordURL:  "https://discord.gg/iffertmedia",
		},
	}
}

// Subscribe registers a callback invoked after any collection is replaced.
// Callbacks run outside the store lock and must not block for long.
func (s *Store) Subscribe(fn func(Topic)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(topic Topic) {
	s.subMu.Lock()
	subs := make([]func(Topic), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(topic)
	}
}

// RecordSync marks a collection as refreshed from its feed.
func (s *Store) RecordSync(topic Topic, fallback bool) {
	s.mu.Lock()
	s.status[topic] = SyncStatus{LastSynced: time.Now(), Fallback: fallback}
	s.mu.Unlock()
}

// Status returns the sync status for every tracked collection.
func (s *Store) Status() map[Topic]SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Topic]SyncStatus, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out
}

func (s *Store) Campaigns() []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out
}

func (s *Store) SetCampaigns(campaigns []model.Campaign) {
	s.mu.Lock()
	s.campaigns = campaigns
	s.mu.Unlock()
	s.notify(TopicCampaigns)
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) SetProducts(products []model.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.notify(TopicProducts)
}

func (s *Store) Creators() []model.Creator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Creator, len(s.creators))
	copy(out, s.creators)
	return out
}

func (s *Store) SetCreators(creators []model.Creator) {
	s.mu.Lock()
	s.creators = creators
	s.mu.Unlock()
	s.notify(TopicCreators)
}

func (s *Store) FeaturedCreators() []model.FeaturedCreator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FeaturedCreator, len(s.featured))
	copy(out, s.featured)
	return out
}

func (s *Store) SetFeaturedCreators(featured []model.FeaturedCreator) {
	s.mu.Lock()
	s.featured = featured
	s.mu.Unlock()
	s.notify(TopicCreators)
}

func (s *Store) ExclusiveCampaigns() []model.ExclusiveCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ExclusiveCampaign, len(s.exclusives))
	copy(out, s.exclusives)
	return out
}

func (s *Store) SetExclusiveCampaigns(exclusives []model.ExclusiveCampaign) {
	s.mu.Lock()
	s.exclusives = exclusives
	s.mu.Unlock()
	s.notify(TopicExclusives)
}

func (s *Store) AdminTexts() []model.AdminText {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AdminText, len(s.adminTexts))
	copy(out, s.adminTexts)
	return out
}

func (s *Store) SetAdminTexts(texts []model.AdminText) {
	s.mu.Lock()
	s.adminTexts = texts
	s.mu.Unlock()
	s.notify(TopicAdminTexts)
}

func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) SetNotifications(notifications []model.Notification) {
	s.mu.Lock()
	s.notifications = notifications
	s.mu.Unlock()
	s.notify(TopicNotifications)
}

func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SetSettings(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.notify(TopicSettings)
}

// Export is the full-state serialization produced by the admin export
// endpoint.
type Export struct {
	Products   []model.Product           `json:"products"`
	Campaigns  []model.Campaign          `json:"campaigns"`
	Creators   []model.Creator           `json:"creators"`
	Exclusives []model.ExclusiveCampaign `json:"exclusiveCampaigns"`
	AdminTexts []model.AdminText         `json:"adminTexts"`
	Settings   Settings                  `json:"settings"`
	Status     map[Topic]SyncStatus      `json:"syncStatus"`
	ExportDate time.Time                 `json:"exportDate"`
}

// Snapshot captures the whole store in one consistent read.
func (s *Store) Snapshot() Export {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp := Export{
		Products:   make([]model.Product, len(s.products)),
		Campaigns:  make([]model.Campaign, len(s.campaigns)),
		Creators:   make([]model.Creator, len(s.creators)),
		Exclusives: make([]model.ExclusiveCampaign, len(s.exclusives)),
		AdminTexts: make([]model.AdminText, len(s.adminTexts)),
		Settings:   s.settings,
		Status:     make(map[Topic]SyncStatus, len(s.status)),
		ExportDate: time.Now(),
	}
	copy(exp.Products, s.products)
	copy(exp.Campaigns, s.campaigns)
	copy(exp.Creators, s.creators)
	copy(exp.Exclusives, s.exclusives)
	copy(exp.AdminTexts, s.adminTexts)
	for k, v := range s.status {
		exp.Status[k] = v
	}
	return exp
}
