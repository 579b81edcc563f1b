package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

func (c *Client) FetchExclusiveCampaigns(ctx context.Context) ([]model.ExclusiveCampaign, error) {
	records, err := c.fetchCSV(ctx, c.URLs.ExclusivesURL)
	if err != nil {
		return nil, err
	}
	return parseExclusives(records, time.Now()), nil
}

func (c *Client) FetchExclusiveCampaignsWithFallback(ctx context.Context) ([]model.ExclusiveCampaign, bool) {
	exclusives, err := c.FetchExclusiveCampaigns(ctx)
	if err != nil {
		c.Log.Warn("exclusive campaigns fetch failed, using fallback data", zap.Error(err))
		return fallbackExclusives(), true
	}
	if len(exclusives) == 0 {
		c.Log.Warn("exclusive campaigns sheet had no usable rows, using fallback data")
		return fallbackExclusives(), true
	}
	return exclusives, false
}

func parseExclusives(records [][]string, now time.Time) []model.ExclusiveCampaign {
	index := headerIndex(records[0])
	base := now.UnixMilli()

	var exclusives []model.ExclusiveCampaign
	for i, cells := range records[1:] {
		r := row{index: index, cells: cells}

		title := r.get("title", "campaign title", "campaign")
		if title == "" {
			continue
		}

		exclusives = append(exclusives, model.ExclusiveCampaign{
			ID:          fmt.Sprintf("%d.%d", base, i+1),
			Title:       title,
			Description: r.get("description", "details"),
			Category:    r.get("category"),
			Commission:  r.get("commission", "commission rate"),
			Link:        r.get("link", "campaign link"),
			EndDate:     r.get("end date", "ends"),
		})
	}
	return exclusives
}
