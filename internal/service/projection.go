package service

import (
	"sort"
	"strings"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

// Filter selects which campaigns a view shows.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterEnded  Filter = "ended"
	FilterNewest Filter = "newest"
)

// ParseFilter maps a query-string value onto a filter, defaulting to newest.
func ParseFilter(raw string) Filter {
	switch Filter(strings.ToLower(raw)) {
	case FilterAll, FilterActive, FilterEnded, FilterNewest:
		return Filter(strings.ToLower(raw))
	default:
		return FilterNewest
	}
}

// ProjectCampaigns derives a view over the canonical campaign list: status
// filter, then case-insensitive substring search over title, seller and
// description, always presented newest-first by the ID's timestamp prefix.
// Pure function; the input slice is never mutated.
func ProjectCampaigns(campaigns []model.Campaign, filter Filter, query string) []model.Campaign {
	filtered := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		switch filter {
		case FilterActive:
			if !c.IsActive {
				continue
			}
		case FilterEnded:
			if c.IsActive {
				continue
			}
		}
		filtered = append(filtered, c)
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		searched := filtered[:0]
		for _, c := range filtered {
			if strings.Contains(strings.ToLower(c.Title), q) ||
				strings.Contains(strings.ToLower(c.SellerName), q) ||
				strings.Contains(strings.ToLower(c.Description), q) {
				searched = append(searched, c)
			}
		}
		filtered = searched
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return model.IDTimestamp(filtered[i].ID) > model.IDTimestamp(filtered[j].ID)
	})
	return filtered
}
