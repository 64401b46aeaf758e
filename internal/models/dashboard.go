package models

import "github.com/shopspring/decimal"

// DashboardSummary holds store-wide totals.
type DashboardSummary struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalUsers    int64           `json:"totalUsers"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
