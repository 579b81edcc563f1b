package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/events"
	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/repository"
	"github.com/iffertmedia/dashboard-backend/internal/sheets"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

// SyncService pulls the CSV feeds, reconciles campaigns against the current
// store state and replaces each collection atomically.
type SyncService struct {
	Sheets *sheets.Client
	Store  *store.Store
	Repo   repository.OverrideRepositoryInterface // nil when no database is configured
	Events events.Publisher
	Log    *zap.Logger

	// Overlapping refreshes race; the sequence guard makes sure an older,
	// slower fetch never overwrites a newer result.
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// RefreshResult summarizes one refresh pass.
type RefreshResult struct {
	Campaigns  int  `json:"campaigns"`
	Products   int  `json:"products"`
	Creators   int  `json:"creators"`
	Exclusives int  `json:"exclusives"`
	Fallback   bool `json:"fallback"`
}

func (s *SyncService) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// RefreshCampaigns fetches the campaigns feed and publishes the merged list.
// The merge reads the store at apply time so admin edits made while the fetch
// was in flight are still preserved.
func (s *SyncService) RefreshCampaigns(ctx context.Context) (int, bool) {
	seq := s.nextSeq()
	fresh, fallback := s.Sheets.FetchCampaignsWithFallback(ctx)

	s.mu.Lock()
	if seq < s.applied {
		s.mu.Unlock()
		s.Log.Info("discarding stale campaigns fetch", zap.Uint64("seq", seq))
		return 0, fallback
	}
	s.applied = seq
	merged := Reconcile(fresh, s.Store.Campaigns())
	s.Store.SetCampaigns(merged)
	s.Store.RecordSync(store.TopicCampaigns, fallback)
	s.mu.Unlock()

	s.publish(events.Event{
		Type:       events.TypeCatalogSynced,
		Detail:     fmt.Sprintf("campaigns=%d fallback=%t", len(merged), fallback),
		OccurredAt: time.Now(),
	})
	s.Log.Info("campaigns refreshed",
		zap.Int("count", len(merged)),
		zap.Bool("fallback", fallback))
	return len(merged), fallback
}

func (s *SyncService) RefreshProducts(ctx context.Context) (int, bool) {
	products, fallback := s.Sheets.FetchProductsWithFallback(ctx)
	s.Store.SetProducts(products)
	s.Store.RecordSync(store.TopicProducts, fallback)
	return len(products), fallback
}

// RefreshCreators replaces creators and derives the home-screen featured
// slice from the first six records.
func (s *SyncService) RefreshCreators(ctx context.Context) (int, bool) {
	creators, fallback := s.Sheets.FetchCreatorsWithFallback(ctx)
	s.Store.SetCreators(creators)

	featured := make([]model.FeaturedCreator, 0, 6)
	for _, c := range creators {
		featured = append(featured, c.Featured())
		if len(featured) == 6 {
			break
		}
	}
	s.Store.SetFeaturedCreators(featured)
	s.Store.RecordSync(store.TopicCreators, fallback)
	return len(creators), fallback
}

func (s *SyncService) RefreshExclusives(ctx context.Context) (int, bool) {
	exclusives, fallback := s.Sheets.FetchExclusiveCampaignsWithFallback(ctx)
	s.Store.SetExclusiveCampaigns(exclusives)
	s.Store.RecordSync(store.TopicExclusives, fallback)
	return len(exclusives), fallback
}

// RefreshAll runs every feed once.
func (s *SyncService) RefreshAll(ctx context.Context) RefreshResult {
	var res RefreshResult
	var fb bool

	res.Campaigns, fb = s.RefreshCampaigns(ctx)
	res.Fallback = res.Fallback || fb
	res.Products, fb = s.RefreshProducts(ctx)
	res.Fallback = res.Fallback || fb
	res.Creators, fb = s.RefreshCreators(ctx)
	res.Fallback = res.Fallback || fb
	res.Exclusives, fb = s.RefreshExclusives(ctx)
	res.Fallback = res.Fallback || fb
	return res
}

// Bootstrap performs the initial load: fetch everything, then re-apply the
// persisted override snapshot so admin edits survive a restart.
func (s *SyncService) Bootstrap(ctx context.Context) RefreshResult {
	res := s.RefreshAll(ctx)

	if s.Repo == nil {
		return res
	}
	overrides, err := s.Repo.ListAll()
	if err != nil {
		s.Log.Warn("loading persisted overrides failed", zap.Error(err))
		return res
	}
	if len(overrides) == 0 {
		return res
	}

	byTitle := make(map[string]repository.Override, len(overrides))
	for _, o := range overrides {
		byTitle[o.Title] = o
	}

	campaigns := s.Store.Campaigns()
	applied := 0
	for i, c := range campaigns {
		o, ok := byTitle[c.Title]
		if !ok {
			continue
		}
		campaigns[i].IsActive = o.IsActive
		if o.MoreInfo != nil {
			campaigns[i].MoreInfoOptions = o.MoreInfo
		}
		if o.MoreNotes != "" {
			campaigns[i].MoreNotes = o.MoreNotes
		}
		applied++
	}
	s.Store.SetCampaigns(campaigns)
	s.Log.Info("persisted overrides applied", zap.Int("count", applied))
	return res
}

// Start runs the background refresh loop until the context is cancelled.
func (s *SyncService) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RefreshAll(ctx)
			}
		}
	}()
}

func (s *SyncService) publish(e events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(events.QueueName, e); err != nil {
		s.Log.Warn("event publish failed", zap.String("type", e.Type), zap.Error(err))
	}
}
