package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	records, err := c.fetchCSV(ctx, c.URLs.ProductsURL)
	if err != nil {
		return nil, err
	}
	return parseProducts(records, time.Now()), nil
}

func (c *Client) FetchProductsWithFallback(ctx context.Context) ([]model.Product, bool) {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		c.Log.Warn("products fetch failed, using fallback data", zap.Error(err))
		return fallbackProducts(), true
	}
	if len(products) == 0 {
		c.Log.Warn("products sheet had no usable rows, using fallback data")
		return fallbackProducts(), true
	}
	return products, false
}

func parseProducts(records [][]string, now time.Time) []model.Product {
	index := headerIndex(records[0])
	base := now.UnixMilli()

	var products []model.Product
	for i, cells := range records[1:] {
		r := row{index: index, cells: cells}

		name := r.get("name", "product name", "product")
		if name == "" {
			continue
		}

		p := model.Product{
			ID:                       fmt.Sprintf("%d.%d", base, i+1),
			Name:                     name,
			Images:                   r.getList("images", "image urls", "image"),
			PositiveReviewPercentage: r.getFloat(0, "positive review percentage", "positive reviews"),
			ShopRating:               r.getFloat(0, "shop rating"),
			BaseCommission:           r.getFloat(0, "base commission", "commission"),
			HigherCommission:         r.getFloat(0, "higher commission"),
			CommissionIncrease:       r.getFloat(0, "commission increase"),
			Category:                 r.get("category"),
			Tags:                     r.getList("tags"),
			TikTokShopURL:            r.get("tiktok shop url", "shop url"),
			SampleRequestURL:         r.get("sample request url"),
			ShopName:                 r.get("shop name", "shop"),
			Price:                    r.getFloat(0, "price"),
			OriginalPrice:            r.getFloat(0, "original price"),
		}

		// Star rating is nullable: some products launch with no reviews yet.
		if raw := r.get("star rating", "rating"); raw != "" {
			if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				p.StarRating = &v
			}
		}

		products = append(products, p)
	}
	return products
}
