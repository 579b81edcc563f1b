package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// Feed names accepted by the debug endpoints.
const (
	FeedCampaigns  = "campaigns"
	FeedProducts   = "products"
	FeedCreators   = "creators"
	FeedExclusives = "exclusives"
)

// DebugInfo is a connection report for one feed, shown in the admin debug
// screen. Failures are reported in-band, not returned as errors.
type DebugInfo struct {
	Feed       string   `json:"feed"`
	Success    bool     `json:"success"`
	Status     int      `json:"status,omitempty"`
	DataLength int      `json:"dataLength,omitempty"`
	TotalRows  int      `json:"totalRows,omitempty"`
	Headers    []string `json:"headers,omitempty"`
	SampleRow  []string `json:"sampleRow,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Validation reports structural problems with a feed without failing.
type Validation struct {
	Feed            string   `json:"feed"`
	Valid           bool     `json:"valid"`
	TotalRows       int      `json:"totalRows"`
	Headers         []string `json:"headers,omitempty"`
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

func (c *Client) feedURL(feed string) (string, error) {
	switch feed {
	case FeedCampaigns:
		return c.URLs.CampaignsURL, nil
	case FeedProducts:
		return c.URLs.ProductsURL, nil
	case FeedCreators:
		return c.URLs.CreatorsURL, nil
	case FeedExclusives:
		return c.URLs.ExclusivesURL, nil
	default:
		return "", fmt.Errorf("unknown feed %q", feed)
	}
}

// FeedDebugInfo fetches a feed once and reports what came back.
func (c *Client) FeedDebugInfo(ctx context.Context, feed string) DebugInfo {
	info := DebugInfo{Feed: feed}

	url, err := c.feedURL(feed)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	raw, status, err := c.rawFeed(ctx, url)
	info.Status = status
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.DataLength = len(raw)

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		info.Error = fmt.Sprintf("parse csv: %v", err)
		return info
	}

	info.TotalRows = len(records)
	if len(records) > 0 {
		info.Headers = records[0]
	}
	if len(records) > 1 {
		info.SampleRow = records[1]
	}
	info.Success = true
	return info
}

// requiredColumns holds the synonym groups a feed must carry to parse into
// non-empty records.
var requiredColumns = map[string][][]string{
	FeedCampaigns: {
		{"title", "campaign title", "campaign"},
		{"seller name", "seller", "brand"},
		{"total commission", "commission", "commission rate"},
	},
	FeedProducts: {
		{"name", "product name", "product"},
		{"shop name", "shop"},
	},
	FeedCreators: {
		{"name", "creator name", "creator"},
		{"tiktok handle", "handle"},
	},
	FeedExclusives: {
		{"title", "campaign title", "campaign"},
	},
}

// ValidateFeed checks that a feed's header row carries the columns the
// parser needs and that data rows exist.
func (c *Client) ValidateFeed(ctx context.Context, feed string) Validation {
	v := Validation{Feed: feed}

	info := c.FeedDebugInfo(ctx, feed)
	if !info.Success {
		v.Issues = append(v.Issues, info.Error)
		return v
	}

	v.Headers = info.Headers
	v.TotalRows = info.TotalRows - 1
	if v.TotalRows < 0 {
		v.TotalRows = 0
	}

	index := headerIndex(info.Headers)
	for _, group := range requiredColumns[feed] {
		found := false
		for _, name := range group {
			if _, ok := index[name]; ok {
				found = true
				break
			}
		}
		if !found {
			v.Issues = append(v.Issues, fmt.Sprintf("missing column %q", group[0]))
			v.Recommendations = append(v.Recommendations,
				fmt.Sprintf("add a %q column (accepted names: %s)", group[0], strings.Join(group, ", ")))
		}
	}

	if v.TotalRows == 0 {
		v.Issues = append(v.Issues, "sheet has a header row but no data rows")
	}

	v.Valid = len(v.Issues) == 0
	return v
}
