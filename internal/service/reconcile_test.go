package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/service"
)

func TestReconcilePreservesAdminFields(t *testing.T) {
	existing := []model.Campaign{
		{
			ID:          "1600000000000.1",
			Title:       "Summer Sale",
			Description: "old description",
			IsActive:    false,
			MoreNotes:   "VIP only",
			MoreInfoOptions: &model.MoreInfoOptions{
				Trending: true,
			},
		},
	}
	fresh := []model.Campaign{
		{
			ID:              "1700000000000.1",
			Title:           "Summer Sale",
			Description:     "new description",
			SellerName:      "Coastal Threads",
			TotalCommission: 18,
			IsActive:        true,
		},
	}

	merged := service.Reconcile(fresh, existing)
	require.Len(t, merged, 1)

	got := merged[0]
	// Descriptive fields come from the fresh fetch.
	assert.Equal(t, "1700000000000.1", got.ID)
	assert.Equal(t, "new description", got.Description)
	assert.Equal(t, "Coastal Threads", got.SellerName)
	assert.Equal(t, 18.0, got.TotalCommission)
	// Admin-owned fields survive the refresh.
	assert.False(t, got.IsActive)
	assert.Equal(t, "VIP only", got.MoreNotes)
	require.NotNil(t, got.MoreInfoOptions)
	assert.True(t, got.MoreInfoOptions.Trending)
}

func TestReconcileUnmatchedFreshPassesThrough(t *testing.T) {
	existing := []model.Campaign{
		{ID: "1600000000000.1", Title: "Summer Sale", IsActive: false},
	}
	fresh := []model.Campaign{
		{ID: "1700000000000.1", Title: "Summer Sale", IsActive: true},
		{ID: "1700000000000.2", Title: "Glow Serum Launch", IsActive: true, MoreNotes: "from sheet"},
	}

	merged := service.Reconcile(fresh, existing)
	require.Len(t, merged, 2)

	assert.Equal(t, "Glow Serum Launch", merged[1].Title)
	assert.True(t, merged[1].IsActive)
	assert.Equal(t, "from sheet", merged[1].MoreNotes)
	assert.Nil(t, merged[1].MoreInfoOptions)
}

func TestReconcileEmptyLocalFieldsTakeFreshValues(t *testing.T) {
	existing := []model.Campaign{
		{ID: "1600000000000.1", Title: "Tech Gadget Drop", IsActive: true},
	}
	fresh := []model.Campaign{
		{
			ID:        "1700000000000.1",
			Title:     "Tech Gadget Drop",
			IsActive:  true,
			MoreNotes: "sheet notes",
			MoreInfoOptions: &model.MoreInfoOptions{
				FreeSample: true,
			},
		},
	}

	merged := service.Reconcile(fresh, existing)
	require.Len(t, merged, 1)
	// The local record never carried overrides, so the fresh values win.
	assert.Equal(t, "sheet notes", merged[0].MoreNotes)
	require.NotNil(t, merged[0].MoreInfoOptions)
	assert.True(t, merged[0].MoreInfoOptions.FreeSample)
}

func TestReconcileIdempotent(t *testing.T) {
	existing := []model.Campaign{
		{ID: "1600000000000.1", Title: "Summer Sale", IsActive: false, MoreNotes: "VIP only"},
		{ID: "1600000000000.2", Title: "Pet Treat Sampler", IsActive: true},
	}
	fresh := []model.Campaign{
		{ID: "1700000000000.1", Title: "Summer Sale", IsActive: true},
		{ID: "1700000000000.2", Title: "Glow Serum Launch", IsActive: true},
	}

	once := service.Reconcile(fresh, existing)
	twice := service.Reconcile(once, existing)
	assert.Equal(t, once, twice)
}

func TestReconcileKeepsAdminCreatedCampaigns(t *testing.T) {
	existing := []model.Campaign{
		{ID: "1650000000000.abc", Title: "Local Only Launch", IsActive: true, AdminCreated: true},
		{ID: "1600000000000.1", Title: "Dropped Sheet Campaign", IsActive: true},
	}
	fresh := []model.Campaign{
		{ID: "1700000000000.1", Title: "Summer Sale", IsActive: true},
	}

	merged := service.Reconcile(fresh, existing)
	require.Len(t, merged, 2)

	assert.Equal(t, "Summer Sale", merged[0].Title)
	// Admin-created campaigns survive; sheet-sourced ones missing from the
	// fresh fetch do not.
	assert.Equal(t, "Local Only Launch", merged[1].Title)
	assert.True(t, merged[1].AdminCreated)
}

func TestReconcileDuplicateTitlesCollapseToFirstMatch(t *testing.T) {
	existing := []model.Campaign{
		{ID: "1600000000000.1", Title: "Summer Sale", IsActive: false, MoreNotes: "first"},
		{ID: "1600000000000.2", Title: "Summer Sale", IsActive: true, MoreNotes: "second"},
	}
	fresh := []model.Campaign{
		{ID: "1700000000000.1", Title: "Summer Sale", IsActive: true},
	}

	merged := service.Reconcile(fresh, existing)
	require.Len(t, merged, 1)
	// Known limitation of title matching: the first existing record wins.
	assert.Equal(t, "first", merged[0].MoreNotes)
	assert.False(t, merged[0].IsActive)
}
