package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

// FetchCampaigns pulls the campaigns sheet and maps rows to campaigns by
// header name. Rows with no title are skipped, never fatal.
func (c *Client) FetchCampaigns(ctx context.Context) ([]model.Campaign, error) {
	records, err := c.fetchCSV(ctx, c.URLs.CampaignsURL)
	if err != nil {
		return nil, err
	}
	return parseCampaigns(records, time.Now()), nil
}

// FetchCampaignsWithFallback never fails: on any fetch or parse error it logs
// and returns the static seed campaigns. The second return reports whether
// the fallback dataset was substituted.
func (c *Client) FetchCampaignsWithFallback(ctx context.Context) ([]model.Campaign, bool) {
	campaigns, err := c.FetchCampaigns(ctx)
	if err != nil {
		c.Log.Warn("campaigns fetch failed, using fallback data", zap.Error(err))
		return fallbackCampaigns(), true
	}
	if len(campaigns) == 0 {
		c.Log.Warn("campaigns sheet had no usable rows, using fallback data")
		return fallbackCampaigns(), true
	}
	return campaigns, false
}

func parseCampaigns(records [][]string, now time.Time) []model.Campaign {
	index := headerIndex(records[0])
	base := now.UnixMilli()

	var campaigns []model.Campaign
	for i, cells := range records[1:] {
		r := row{index: index, cells: cells}

		title := r.get("title", "campaign title", "campaign")
		if title == "" {
			continue
		}

		campaigns = append(campaigns, model.Campaign{
			// The sheet has no stable key column, so IDs are regenerated on
			// every fetch. Reconciliation therefore matches by title.
			ID:          fmt.Sprintf("%d.%d", base, i+1),
			Title:       title,
			Description: r.get("description", "details"),
			SellerName:  r.get("seller name", "seller", "brand"),
			SellerLogo:  r.get("seller logo", "logo"),
			BannerImage: r.get("banner image", "banner"),
			BannerURL:   r.get("banner url"),

			TotalCommission: r.getFloat(0, "total commission", "commission", "commission rate"),
			AverageRating:   r.getFloat(model.DefaultAverageRating, "average rating", "rating"),
			Category:        r.get("category"),
			SpecialOffers:   r.getList("special offers", "offers"),
			StartDate:       r.get("start date"),
			EndDate:         r.get("end date"),

			Requirements:         r.get("requirements"),
			TargetAudience:       r.get("target audience"),
			ProductTypes:         r.get("product types"),
			ContentGuidelines:    r.get("content guidelines"),
			BonusCommission:      r.get("bonus commission"),
			PaymentTerms:         r.get("payment terms"),
			ExpectedDeliverables: r.get("expected deliverables", "deliverables"),
			PerformanceMetrics:   r.get("performance metrics"),
			CampaignBudget:       r.get("campaign budget", "budget"),
			ExclusivityTerms:     r.get("exclusivity terms"),
			AdditionalNotes:      r.get("additional notes", "notes"),
			ContactEmail:         r.get("contact email", "email"),
			CampaignLink:         r.get("campaign link", "link", "join link"),
			ProductImageURL:      r.get("product image url", "product image"),

			IsActive: r.getBool(true, "status", "active", "is active"),
		})
	}
	return campaigns
}
