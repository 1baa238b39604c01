package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/models"
	"campus-eats/store/memstore"
)

func TestAnalyticsReport(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	orders := NewOrderService(st, nil)
	analytics := NewAnalyticsService(st)

	user := seedUser(t, st)
	dosa := seedMenuItem(t, st, "Masala Dosa", 50)
	chai := seedMenuItem(t, st, "Chai", 10)

	// two orders: dosa x2, then dosa + chai
	_, err := carts.Add(context.Background(), user.ID.Hex(), dosa.ID.Hex(), 2)
	require.NoError(t, err)
	first, err := orders.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	_, err = carts.Add(context.Background(), user.ID.Hex(), dosa.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = carts.Add(context.Background(), user.ID.Hex(), chai.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = orders.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	_, err = orders.UpdateStatus(context.Background(), first.ID.Hex(), models.StatusPreparing)
	require.NoError(t, err)

	report, err := analytics.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.TotalUsers)
	assert.Equal(t, int64(2), report.TotalMenus)
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.Equal(t, 160.0, report.TotalRevenue)
	assert.Equal(t, int64(1), report.OrdersByStatus[models.StatusProcessing])
	assert.Equal(t, int64(1), report.OrdersByStatus[models.StatusPreparing])
	assert.Equal(t, int64(2), report.OrdersByPaymentStatus[models.PaymentPending])
	assert.Equal(t, 160.0, report.TotalAmountByPayment[models.PaymentPending])
	assert.Equal(t, int64(2), report.MenuByCategory["Meals"])

	require.NotEmpty(t, report.BestSellingItems)
	assert.Equal(t, "Masala Dosa", report.BestSellingItems[0].Name)
	assert.Equal(t, int64(2), report.BestSellingItems[0].Count)

	require.Len(t, report.RevenueOverTime, 1)
	assert.Equal(t, 160.0, report.RevenueOverTime[0].Revenue)
}
