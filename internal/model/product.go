package model

type Product struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Images                   []string `json:"images"`
	StarRating               *float64 `json:"starRating"`
	PositiveReviewPercentage float64  `json:"positiveReviewPercentage"`
	ShopRating               float64  `json:"shopRating"`
	BaseCommission           float64  `json:"baseCommission"`
	HigherCommission         float64  `json:"higherCommission,omitempty"`
	CommissionIncrease       float64  `json:"commissionIncrease,omitempty"`
	Category                 string   `json:"category"`
	Tags                     []string `json:"tags"`
	TikTokShopURL            string   `json:"tiktokShopUrl"`
	SampleRequestURL         string   `json:"sampleRequestUrl,omitempty"`
	ShopName                 string   `json:"shopName"`
	Price                    float64  `json:"price"`
	OriginalPrice            float64  `json:"originalPrice,omitempty"`
}
