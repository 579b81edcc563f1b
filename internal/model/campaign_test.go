package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

func TestNewIDCarriesCreationTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	id := model.NewID()
	after := time.Now().UnixMilli()

	require.Contains(t, id, ".")
	ts := model.IDTimestamp(id)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)

	_, suffix, _ := strings.Cut(id, ".")
	assert.Len(t, suffix, 8)
}

func TestIDTimestamp(t *testing.T) {
	assert.Equal(t, int64(1700000000000), model.IDTimestamp("1700000000000.abc"))
	assert.Equal(t, int64(0), model.IDTimestamp("not-an-id"))
	assert.Equal(t, int64(0), model.IDTimestamp(""))
	assert.Equal(t, int64(0), model.IDTimestamp(".abc"))
}

func TestCreatorFeatured(t *testing.T) {
	c := model.Creator{
		ID:           "cr1",
		Name:         "Maya Chen",
		Avatar:       "https://example.com/a.jpg",
		TikTokHandle: "@mayachen",
		Followers:    "1.2M",
		Category:     "beauty",
		IsVerified:   true,
	}

	f := c.Featured()
	assert.Equal(t, "cr1", f.ID)
	assert.Equal(t, "@mayachen", f.TikTokHandle)
	assert.Equal(t, "beauty", f.Specialty)
	assert.True(t, f.IsVerified)
}
