package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iffertmedia/dashboard-backend/internal/model"
	"github.com/iffertmedia/dashboard-backend/internal/service"
)

func sampleCampaigns() []model.Campaign {
	return []model.Campaign{
		{ID: "1600000000000.xyz", Title: "Glow Serum Launch", SellerName: "Lumina Skincare", Description: "Skincare push", IsActive: true},
		{ID: "1700000000000.abc", Title: "Tech Gadget Drop", SellerName: "Volt Supply", Description: "Earbuds and chargers", IsActive: true},
		{ID: "1650000000000.def", Title: "Summer Sale", SellerName: "Coastal Threads", Description: "Seasonal apparel", IsActive: false},
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, service.FilterActive, service.ParseFilter("active"))
	assert.Equal(t, service.FilterEnded, service.ParseFilter("ENDED"))
	assert.Equal(t, service.FilterAll, service.ParseFilter("all"))
	assert.Equal(t, service.FilterNewest, service.ParseFilter(""))
	assert.Equal(t, service.FilterNewest, service.ParseFilter("bogus"))
}

func TestProjectCampaignsStatusPartition(t *testing.T) {
	campaigns := sampleCampaigns()

	active := service.ProjectCampaigns(campaigns, service.FilterActive, "")
	require.Len(t, active, 2)
	for _, c := range active {
		assert.True(t, c.IsActive)
	}

	ended := service.ProjectCampaigns(campaigns, service.FilterEnded, "")
	require.Len(t, ended, 1)
	assert.Equal(t, "Summer Sale", ended[0].Title)

	// Active and ended together cover the whole list.
	assert.Equal(t, len(campaigns), len(active)+len(ended))
}

func TestProjectCampaignsNewestFirst(t *testing.T) {
	got := service.ProjectCampaigns(sampleCampaigns(), service.FilterNewest, "")
	require.Len(t, got, 3)
	assert.Equal(t, "1700000000000.abc", got[0].ID)
	assert.Equal(t, "1650000000000.def", got[1].ID)
	assert.Equal(t, "1600000000000.xyz", got[2].ID)
}

func TestProjectCampaignsSearchCaseInsensitive(t *testing.T) {
	got := service.ProjectCampaigns(sampleCampaigns(), service.FilterAll, "glow")
	require.Len(t, got, 1)
	assert.Equal(t, "Glow Serum Launch", got[0].Title)

	// Seller and description are searched too.
	bySeller := service.ProjectCampaigns(sampleCampaigns(), service.FilterAll, "VOLT")
	require.Len(t, bySeller, 1)
	assert.Equal(t, "Tech Gadget Drop", bySeller[0].Title)

	byDesc := service.ProjectCampaigns(sampleCampaigns(), service.FilterAll, "apparel")
	require.Len(t, byDesc, 1)
	assert.Equal(t, "Summer Sale", byDesc[0].Title)
}

func TestProjectCampaignsSearchComposesWithFilter(t *testing.T) {
	// "Summer Sale" matches the query but is ended, so the active view
	// excludes it.
	got := service.ProjectCampaigns(sampleCampaigns(), service.FilterActive, "sale")
	assert.Empty(t, got)
}

func TestProjectCampaignsDoesNotMutateInput(t *testing.T) {
	campaigns := sampleCampaigns()
	service.ProjectCampaigns(campaigns, service.FilterNewest, "")
	assert.Equal(t, sampleCampaigns(), campaigns)
}
