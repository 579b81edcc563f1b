package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/config"
)

// Client fetches published Google Sheets CSV feeds. Every feed has a
// WithFallback variant that absorbs all failures and substitutes the static
// seed dataset, so callers never see a hard error.
type Client struct {
	HTTP *http.Client
	URLs config.Sheets
	Log  *zap.Logger
}

func NewClient(urls config.Sheets, log *zap.Logger) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: 15 * time.Second},
		URLs: urls,
		Log:  log,
	}
}

// fetchCSV downloads and parses a feed. Rows may have ragged lengths; the
// header row is normalized to lowercase for column lookup.
func (c *Client) fetchCSV(ctx context.Context, url string) ([][]string, error) {
	if url == "" {
		return nil, fmt.Errorf("sheet URL not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet returned HTTP %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}
	return records, nil
}

// rawFeed is fetchCSV without parsing, used by the debug endpoints.
func (c *Client) rawFeed(ctx context.Context, url string) (string, int, error) {
	if url == "" {
		return "", 0, fmt.Errorf("sheet URL not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

// row wraps one CSV data row with header-name lookup. Lookup is
// case-insensitive and tolerant of column renames via synonyms.
type row struct {
	index map[string]int
	cells []string
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func (r row) get(names ...string) string {
	for _, name := range names {
		if i, ok := r.index[name]; ok && i < len(r.cells) {
			return strings.TrimSpace(r.cells[i])
		}
	}
	return ""
}

func (r row) getFloat(fallback float64, names ...string) float64 {
	raw := r.get(names...)
	if raw == "" {
		return fallback
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func (r row) getBool(fallback bool, names ...string) bool {
	switch strings.ToLower(r.get(names...)) {
	case "true", "yes", "y", "1", "active":
		return true
	case "false", "no", "n", "0", "ended", "inactive", "paused":
		return false
	default:
		return fallback
	}
}

// getList splits multi-value cells on ";" or "|".
func (r row) getList(names ...string) []string {
	raw := r.get(names...)
	if raw == "" {
		return nil
	}
	sep := ";"
	if strings.Contains(raw, "|") {
		sep = "|"
	}
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
