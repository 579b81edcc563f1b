package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAverageRating is used when the sheet carries no parsable rating.
const DefaultAverageRating = 4.5

// MoreInfoOptions are the admin-controlled badge toggles shown on a campaign.
// A nil pointer on Campaign means the admin never touched them.
type MoreInfoOptions struct {
	FreeSample      bool `json:"freeSample"`
	Trending        bool `json:"trending"`
	TopSelling      bool `json:"topSelling"`
	HighOpportunity bool `json:"highOpportunity"`
	VideoOnly       bool `json:"videoOnly"`
	LiveOnly        bool `json:"liveOnly"`
	VideoOrLive     bool `json:"videoOrLive"`
}

type Campaign struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SellerName  string `json:"sellerName"`
	SellerLogo  string `json:"sellerLogo,omitempty"`
	BannerImage string `json:"bannerImage,omitempty"`
	BannerURL   string `json:"bannerUrl,omitempty"`

	TotalCommission float64  `json:"totalCommission"`
	AverageRating   float64  `json:"averageRating"`
	Category        string   `json:"category"`
	SpecialOffers   []string `json:"specialOffers,omitempty"`
	StartDate       string   `json:"startDate,omitempty"`
	EndDate         string   `json:"endDate,omitempty"`

	// Optional descriptive columns from the sheet.
	Requirements         string `json:"requirements,omitempty"`
	TargetAudience       string `json:"targetAudience,omitempty"`
	ProductTypes         string `json:"productTypes,omitempty"`
	ContentGuidelines    string `json:"contentGuidelines,omitempty"`
	BonusCommission      string `json:"bonusCommission,omitempty"`
	PaymentTerms         string `json:"paymentTerms,omitempty"`
	ExpectedDeliverables string `json:"expectedDeliverables,omitempty"`
	PerformanceMetrics   string `json:"performanceMetrics,omitempty"`
	CampaignBudget       string `json:"campaignBudget,omitempty"`
	ExclusivityTerms     string `json:"exclusivityTerms,omitempty"`
	AdditionalNotes      string `json:"additionalNotes,omitempty"`
	ContactEmail         string `json:"contactEmail,omitempty"`
	CampaignLink         string `json:"campaignLink,omitempty"`
	ProductImageURL      string `json:"productImageUrl,omitempty"`

	// Admin-owned fields. These must survive re-fetches from the sheet.
	IsActive        bool             `json:"isActive"`
	MoreInfoOptions *MoreInfoOptions `json:"moreInfoOptions,omitempty"`
	MoreNotes       string           `json:"moreNotes,omitempty"`

	// AdminCreated marks campaigns added through the admin panel rather than
	// parsed from the sheet, so a refresh does not drop them.
	AdminCreated bool `json:"adminCreated,omitempty"`
}

// NewID builds an ID whose leading numeric component is the creation time in
// unix milliseconds. The rest of the app sorts newest-first by that prefix,
// so the format is load-bearing.
func NewID() string {
	return fmt.Sprintf("%d.%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// IDTimestamp extracts the numeric prefix of a campaign ID. Unparsable IDs
// sort as 0, i.e. oldest.
func IDTimestamp(id string) int64 {
	prefix, _, _ := strings.Cut(id, ".")
	ts, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
