// Package analytics builds the dashboard summary: a read-only fold
// over orders, users and top products. Nothing here mutates the store.
package analytics

import (
	"context"
	"math"
	"time"

	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/orders"
	"github.com/Het4705/chic-dashboard-haven/internal/users"
)

// MonthRevenue is one bucket of the trailing revenue series.
type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

// StatusCount is an order count for one status.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// TopProduct projects a product to name plus review count, which the
// dashboard reports as "sales". An acknowledged approximation.
type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// Data is the full dashboard payload.
type Data struct {
	TotalSales        int            `json:"totalSales"`
	ActiveUsers       int            `json:"activeUsers"`
	TotalRevenue      int            `json:"totalRevenue"`
	PendingOrders     int            `json:"pendingOrders"`
	RevenueByMonth    []MonthRevenue `json:"revenueByMonth"`
	OrderStatusCounts []StatusCount  `json:"orderStatusCounts"`
	TopProducts       []TopProduct   `json:"topProducts"`
}

// Build folds the inputs into the dashboard payload. The revenue series
// covers the trailing 7 calendar months ending at now's month, oldest
// first; months with no orders report 0. Revenue figures are summed
// first and rounded once.
func Build(allOrders []models.Order, userCount int, topProducts []models.Product, now time.Time) Data {
	var totalRevenue float64
	pendingOrders := 0
	statusTotals := make(map[models.OrderStatus]int)
	monthTotals := make(map[int]float64)

	for _, order := range allOrders {
		totalRevenue += order.Total
		statusTotals[order.Status]++
		if order.Status == models.OrderPending || order.Status == models.OrderProcessing {
			pendingOrders++
		}
		monthTotals[monthKey(order.CreatedAt)] += order.Total
	}

	revenueByMonth := make([]MonthRevenue, 0, 7)
	for i := 6; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		revenueByMonth = append(revenueByMonth, MonthRevenue{
			Month:   monthStart.Format("Jan"),
			Revenue: int(math.Round(monthTotals[monthKey(monthStart)])),
		})
	}

	statusCounts := make([]StatusCount, 0, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		statusCounts = append(statusCounts, StatusCount{Status: status, Count: statusTotals[status]})
	}

	top := make([]TopProduct, 0, len(topProducts))
	for _, product := range topProducts {
		top = append(top, TopProduct{Name: product.Name, Sales: product.ReviewCount})
	}

	return Data{
		TotalSales:        len(allOrders),
		ActiveUsers:       userCount,
		TotalRevenue:      int(math.Round(totalRevenue)),
		PendingOrders:     pendingOrders,
		RevenueByMonth:    revenueByMonth,
		OrderStatusCounts: statusCounts,
		TopProducts:       top,
	}
}

// monthKey collapses a timestamp to its calendar (year, month) bucket.
func monthKey(t time.Time) int {
	year, month, _ := t.Date()
	return year*12 + int(month)
}

// Service feeds Build from the repositories.
type Service struct {
	orders   *orders.Service
	users    *users.Service
	products *catalog.ProductService
}

func NewService(orderSvc *orders.Service, userSvc *users.Service, productSvc *catalog.ProductService) *Service {
	return &Service{orders: orderSvc, users: userSvc, products: productSvc}
}

// Dashboard fetches all orders, all users and the top 5 products by
// review count, then folds them.
func (s *Service) Dashboard(ctx context.Context) (Data, error) {
	allOrders, err := s.orders.List(ctx)
	if err != nil {
		return Data{}, err
	}
	allUsers, err := s.users.List(ctx)
	if err != nil {
		return Data{}, err
	}
	topProducts, err := s.products.Top(ctx, 5)
	if err != nil {
		return Data{}, err
	}
	return Build(allOrders, len(allUsers), topProducts, time.Now()), nil
}
