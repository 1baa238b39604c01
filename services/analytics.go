package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/store"
)

// AnalyticsReport is the admin dashboard payload: overall totals plus
// the grouped breakdowns produced by the store's aggregation operations.
type AnalyticsReport struct {
	TotalUsers            int64                `json:"totalUsers"`
	TotalMenus            int64                `json:"totalMenus"`
	TotalOrders           int64                `json:"totalOrders"`
	TotalRevenue          float64              `json:"totalRevenue"`
	OrdersByStatus        map[string]int64     `json:"ordersByStatus"`
	BestSellingItems      []store.ItemCount    `json:"bestSellingItems"`
	OrdersByPaymentStatus map[string]int64     `json:"ordersByPaymentStatus"`
	TotalAmountByPayment  map[string]float64   `json:"totalAmountByPaymentStatus"`
	MenuByCategory        map[string]int64     `json:"menuByCategory"`
	RevenueOverTime       []store.DailyRevenue `json:"revenueOverTime"`
}

// AnalyticsService assembles the dashboard report.
type AnalyticsService struct {
	store store.Store
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(st store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Report gathers the analytics snapshot. Revenue over time covers the
// last 30 days.
func (s *AnalyticsService) Report(ctx context.Context) (*AnalyticsReport, error) {
	totalUsers, err := s.store.Users().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMenus, err := s.store.Menus().Count(ctx)
	if err != nil {
		return nil, err
	}
	ordersByStatus, err := s.store.Orders().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	ordersByPayment, err := s.store.Orders().CountByPaymentStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalByPayment, err := s.store.Orders().TotalByPaymentStatus(ctx)
	if err != nil {
		return nil, err
	}
	bestSellers, err := s.store.Orders().BestSellers(ctx, 5)
	if err != nil {
		return nil, err
	}
	menuByCategory, err := s.store.Menus().CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	since := primitive.NewDateTimeFromTime(time.Now().UTC().AddDate(0, 0, -30))
	revenueOverTime, err := s.store.Orders().RevenueSince(ctx, since)
	if err != nil {
		return nil, err
	}

	var totalOrders int64
	for _, count := range ordersByStatus {
		totalOrders += count
	}
	var totalRevenue float64
	for _, amount := range totalByPayment {
		totalRevenue += amount
	}

	return &AnalyticsReport{
		TotalUsers:            totalUsers,
		TotalMenus:            totalMenus,
		TotalOrders:           totalOrders,
		TotalRevenue:          totalRevenue,
		OrdersByStatus:        ordersByStatus,
		BestSellingItems:      bestSellers,
		OrdersByPaymentStatus: ordersByPayment,
		TotalAmountByPayment:  totalByPayment,
		MenuByCategory:        menuByCategory,
		RevenueOverTime:       revenueOverTime,
	}, nil
}
