package analytics

import (
	"testing"
	"time"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(t time.Time, total float64, status models.OrderStatus) models.Order {
	return models.Order{Total: total, Status: status, CreatedAt: t}
}

func TestBuildEmptyRevenueSeries(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	data := Build(nil, 0, nil, now)

	require.Len(t, data.RevenueByMonth, 7)
	wantMonths := []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, bucket := range data.RevenueByMonth {
		assert.Equal(t, wantMonths[i], bucket.Month, "months run oldest to newest")
		assert.Equal(t, 0, bucket.Revenue)
	}
	assert.Equal(t, 0, data.TotalSales)
	assert.Equal(t, 0, data.TotalRevenue)
	assert.Equal(t, 0, data.PendingOrders)
}

func TestBuildRevenueBuckets(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	allOrders := []models.Order{
		orderAt(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 100.2, models.OrderDelivered),
		orderAt(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), 50.3, models.OrderShipped),
		orderAt(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), 80, models.OrderDelivered),
		// Outside the trailing window: contributes to totals but no bucket.
		orderAt(time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC), 10, models.OrderDelivered),
	}

	data := Build(allOrders, 0, nil, now)

	byMonth := map[string]int{}
	for _, bucket := range data.RevenueByMonth {
		byMonth[bucket.Month] = bucket.Revenue
	}
	assert.Equal(t, 151, byMonth["Mar"], "100.2+50.3 summed then rounded")
	assert.Equal(t, 80, byMonth["Jan"])
	assert.Equal(t, 0, byMonth["Feb"])

	// A same-named month from last year must not leak into this year's
	// bucket: the 2023 March order is not in the Mar figure above, but
	// it does count toward the grand total.
	assert.Equal(t, 4, data.TotalSales)
	assert.Equal(t, 241, data.TotalRevenue)
}

func TestBuildTotalRevenueSumsBeforeRounding(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	allOrders := []models.Order{
		orderAt(now, 10.4, models.OrderPending),
		orderAt(now, 20.6, models.OrderPending),
	}

	data := Build(allOrders, 0, nil, now)

	// 10.4+20.6 = 31.0 exactly; rounding each first would also give 31,
	// but 10.4 alone must not round down before the sum.
	assert.Equal(t, 31, data.TotalRevenue)
}

func TestBuildStatusCountsInEnumOrder(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	allOrders := []models.Order{
		orderAt(now, 1, models.OrderPending),
		orderAt(now, 1, models.OrderPending),
		orderAt(now, 1, models.OrderShipped),
	}

	data := Build(allOrders, 0, nil, now)

	require.Len(t, data.OrderStatusCounts, len(models.OrderStatuses))
	wantCounts := map[models.OrderStatus]int{
		models.OrderPending: 2,
		models.OrderShipped: 1,
	}
	for i, sc := range data.OrderStatusCounts {
		assert.Equal(t, models.OrderStatuses[i], sc.Status, "declaration order")
		assert.Equal(t, wantCounts[sc.Status], sc.Count)
	}
}

func TestBuildPendingIncludesProcessing(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	allOrders := []models.Order{
		orderAt(now, 1, models.OrderPending),
		orderAt(now, 1, models.OrderProcessing),
		orderAt(now, 1, models.OrderDelivered),
	}

	data := Build(allOrders, 42, nil, now)

	assert.Equal(t, 2, data.PendingOrders)
	assert.Equal(t, 42, data.ActiveUsers)
	assert.Equal(t, 3, data.TotalSales)
}

func TestBuildTopProductsUseReviewCountAsSales(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	topProducts := []models.Product{
		{Name: "Scarf", ReviewCount: 9},
		{Name: "Belt", ReviewCount: 6},
	}

	data := Build(nil, 0, topProducts, now)

	require.Len(t, data.TopProducts, 2)
	assert.Equal(t, TopProduct{Name: "Scarf", Sales: 9}, data.TopProducts[0])
	assert.Equal(t, TopProduct{Name: "Belt", Sales: 6}, data.TopProducts[1])
}

func TestBuildYearBoundaryMonths(t *testing.T) {
	// January: the window reaches back into the previous year.
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	data := Build(nil, 0, nil, now)

	wantMonths := []string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan"}
	require.Len(t, data.RevenueByMonth, 7)
	for i, bucket := range data.RevenueByMonth {
		assert.Equal(t, wantMonths[i], bucket.Month)
	}
}
