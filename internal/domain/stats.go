package domain

// MonthlySales is one month's aggregate bucket, keyed "YYYY-MM".
type MonthlySales struct {
	Month       string  `json:"_id" gorm:"column:month"`
	TotalSales  float64 `json:"totalSales" gorm:"column:total_sales"`
	TotalOrders int64   `json:"totalOrders" gorm:"column:total_orders"`
}

// StatsSummary is the admin dashboard aggregate view.
type StatsSummary struct {
	TotalOrders      int64          `json:"totalOrders"`
	TotalSales       float64        `json:"totalSales"`
	TrendingProducts int64          `json:"trendingProducts"`
	TotalProducts    int64          `json:"totalProducts"`
	MonthlySales     []MonthlySales `json:"monthlySales"`
}
