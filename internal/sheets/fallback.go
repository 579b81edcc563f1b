package sheets

import "github.com/iffertmedia/dashboard-backend/internal/model"

// Static seed data served whenever a sheet is unreachable or unparsable.
// IDs carry fixed timestamps so newest-first ordering stays deterministic.

func fallbackCampaigns() []model.Campaign {
	return []model.Campaign{
		{
			ID:              "1718000000000.1",
			Title:           "Glow Serum Launch",
			Description:     "Promote the new vitamin-C glow serum to your beauty audience.",
			SellerName:      "Lumina Skincare",
			BannerImage:     "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=800",
			TotalCommission: 20,
			AverageRating:   4.8,
			Category:        "beauty",
			SpecialOffers:   []string{"Free sample for first 50 creators"},
			ContactEmail:    "partnerships@luminaskincare.com",
			IsActive:        true,
		},
		{
			ID:              "1715000000000.2",
			Title:           "Tech Gadget Drop",
			Description:     "Unboxing-friendly smart home bundle with a high-converting landing page.",
			SellerName:      "Nexa Electronics",
			BannerImage:     "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800",
			TotalCommission: 12,
			AverageRating:   4.6,
			Category:        "tech",
			CampaignLink:    "https://shop.nexaelectronics.com/creators",
			IsActive:        true,
		},
		{
			ID:              "1712000000000.3",
			Title:           "Summer Sale",
			Description:     "Seasonal fashion picks with boosted commission through August.",
			SellerName:      "Coastal Threads",
			BannerImage:     "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800",
			TotalCommission: 15,
			AverageRating:   4.4,
			Category:        "fashion",
			SpecialOffers:   []string{"Bonus 5% on orders over $100", "Early access to fall line"},
			IsActive:        true,
		},
		{
			ID:              "1709000000000.4",
			Title:           "Pet Treat Sampler",
			Description:     "Natural dog treat sampler boxes, great for pet accounts of any size.",
			SellerName:      "Waggly Co",
			BannerImage:     "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?w=800",
			TotalCommission: 18,
			AverageRating:   4.7,
			Category:        "pets",
			IsActive:        false,
		},
	}
}

func fallbackProducts() []model.Product {
	rating := func(v float64) *float64 { return &v }
	return []model.Product{
		{
			ID:                       "1718000000000.1",
			Name:                     "Vitamin C Glow Serum",
			Images:                   []string{"https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=400"},
			StarRating:               rating(4.8),
			PositiveReviewPercentage: 96,
			ShopRating:               4.9,
			BaseCommission:           15,
			HigherCommission:         20,
			Category:                 "beauty",
			Tags:                     []string{"trending", "top-seller"},
			TikTokShopURL:            "https://shop.tiktok.com/lumina/glow-serum",
			ShopName:                 "Lumina Skincare",
			Price:                    24.99,
			OriginalPrice:            34.99,
		},
		{
			ID:                       "1715000000000.2",
			Name:                     "Smart LED Light Strip",
			Images:                   []string{"https://images.unsplash.com/photo-1550985616-10810253b84d?w=400"},
			StarRating:               rating(4.5),
			PositiveReviewPercentage: 91,
			ShopRating:               4.6,
			BaseCommission:           10,
			Category:                 "tech",
			Tags:                     []string{"new"},
			TikTokShopURL:            "https://shop.tiktok.com/nexa/led-strip",
			ShopName:                 "Nexa Electronics",
			Price:                    19.99,
		},
		{
			ID:                       "1712000000000.3",
			Name:                     "Linen Beach Shirt",
			Images:                   []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400"},
			PositiveReviewPercentage: 88,
			ShopRating:               4.3,
			BaseCommission:           12,
			Category:                 "fashion",
			TikTokShopURL:            "https://shop.tiktok.com/coastal/linen-shirt",
			ShopName:                 "Coastal Threads",
			Price:                    39.99,
		},
	}
}

func fallbackCreators() []model.Creator {
	return []model.Creator{
		{
			ID:           "1718000000000.1",
			Name:         "Maya Chen",
			Avatar:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200",
			TikTokHandle: "@mayaglow",
			Followers:    "1.2M",
			GMV:          "$850K",
			Category:     "beauty",
			Niche:        []string{"skincare", "makeup"},
			IsVerified:   true,
		},
		{
			ID:           "1715000000000.2",
			Name:         "Derek Osei",
			Avatar:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
			TikTokHandle: "@derektech",
			Followers:    "640K",
			GMV:          "$410K",
			Category:     "tech",
			Niche:        []string{"gadgets", "smart home"},
			IsVerified:   true,
		},
		{
			ID:           "1712000000000.3",
			Name:         "Sofia Reyes",
			Avatar:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200",
			TikTokHandle: "@sofiastyles",
			Followers:    "380K",
			Category:     "fashion",
			Niche:        []string{"outfits", "thrift"},
			IsVerified:   false,
		},
	}
}

func fallbackExclusives() []model.ExclusiveCampaign {
	return []model.ExclusiveCampaign{
		{
			ID:          "1718000000000.1",
			Title:       "Lumina VIP Ambassador Program",
			Description: "Quarterly retainer for top beauty creators, application only.",
			Category:    "beauty",
			Commission:  "25% + retainer",
			Link:        "https://luminaskincare.com/ambassadors",
			EndDate:     "2026-09-30",
		},
		{
			ID:          "1715000000000.2",
			Title:       "Nexa Holiday Showcase",
			Description: "Exclusive early access to the holiday gadget lineup.",
			Category:    "tech",
			Commission:  "18%",
			Link:        "https://shop.nexaelectronics.com/holiday",
		},
	}
}
