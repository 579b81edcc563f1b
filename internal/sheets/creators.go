package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

func (c *Client) FetchCreators(ctx context.Context) ([]model.Creator, error) {
	records, err := c.fetchCSV(ctx, c.URLs.CreatorsURL)
	if err != nil {
		return nil, err
	}
	return parseCreators(records, time.Now()), nil
}

func (c *Client) FetchCreatorsWithFallback(ctx context.Context) ([]model.Creator, bool) {
	creators, err := c.FetchCreators(ctx)
	if err != nil {
		c.Log.Warn("creators fetch failed, using fallback data", zap.Error(err))
		return fallbackCreators(), true
	}
	if len(creators) == 0 {
		c.Log.Warn("creators sheet had no usable rows, using fallback data")
		return fallbackCreators(), true
	}
	return creators, false
}

func parseCreators(records [][]string, now time.Time) []model.Creator {
	index := headerIndex(records[0])
	base := now.UnixMilli()

	var creators []model.Creator
	for i, cells := range records[1:] {
		r := row{index: index, cells: cells}

		name := r.get("name", "creator name", "creator")
		if name == "" {
			continue
		}

		handle := r.get("tiktok handle", "handle")
		if handle != "" && !strings.HasPrefix(handle, "@") {
			handle = "@" + handle
		}

		creators = append(creators, model.Creator{
			ID:            fmt.Sprintf("%d.%d", base, i+1),
			Name:          name,
			Avatar:        r.get("avatar", "avatar url", "photo"),
			TikTokHandle:  handle,
			Followers:     r.get("followers", "follower count"),
			GMV:           r.get("gmv"),
			Category:      r.get("category", "specialty"),
			Niche:         r.getList("niche", "niches"),
			IsVerified:    r.getBool(false, "verified", "is verified"),
			ExampleVideos: r.getList("example videos", "videos"),
		})
	}
	return creators
}
