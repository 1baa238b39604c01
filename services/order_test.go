package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-eats/models"
	"campus-eats/store"
	"campus-eats/store/memstore"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{6}$`)
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	st := memstore.New()
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)

	_, err := svc.Checkout(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := st.Orders().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders, "no order may be created from an empty cart")
}

func TestCheckoutUnknownUser(t *testing.T) {
	st := memstore.New()
	svc := NewOrderService(st, nil)

	_, err := svc.Checkout(context.Background(), "zzzz")
	assert.ErrorIs(t, err, ErrInvalidID)

	user := seedUser(t, st)
	require.NoError(t, st.Users().Delete(context.Background(), user.ID))
	_, err = svc.Checkout(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCheckoutTotalAndSnapshot(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	dosa := seedMenuItem(t, st, "Masala Dosa", 50)
	juice := seedMenuItem(t, st, "Orange Juice", 30)

	_, err := carts.Add(context.Background(), user.ID.Hex(), dosa.ID.Hex(), 2)
	require.NoError(t, err)
	_, err = carts.Add(context.Background(), user.ID.Hex(), juice.ID.Hex(), 1)
	require.NoError(t, err)

	order, err := svc.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, 130.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Masala Dosa", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Orange Juice", order.Items[1].Name)
	assert.Equal(t, 1, order.Items[1].Quantity)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, user.Name, order.CustomerName)
	assert.Equal(t, user.Email, order.Email)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.False(t, order.ID.IsZero())
}

func TestCheckoutClearsCart(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	item := seedMenuItem(t, st, "Biryani", 120)

	_, err := carts.Add(context.Background(), user.ID.Hex(), item.ID.Hex(), 1)
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	cart, err := carts.View(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart)

	orders, err := svc.ListByUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, orders, 1, "exactly one order per checkout")
}

func TestUpdateStatusForwardChain(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	item := seedMenuItem(t, st, "Thali", 90)

	_, err := carts.Add(context.Background(), user.ID.Hex(), item.ID.Hex(), 1)
	require.NoError(t, err)
	order, err := svc.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	for _, status := range []string{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		order, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}
}

func TestUpdateStatusRejectsBackwardAndUnknown(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	item := seedMenuItem(t, st, "Poha", 25)

	_, err := carts.Add(context.Background(), user.ID.Hex(), item.ID.Hex(), 1)
	require.NoError(t, err)
	order, err := svc.Checkout(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	order, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), models.StatusPreparing)
	require.NoError(t, err)
	order, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), models.StatusReady)
	require.NoError(t, err)

	// backward transition
	_, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), models.StatusProcessing)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// unknown status
	_, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), "Pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	// the stored status is untouched
	stored, err := svc.Get(context.Background(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, stored.Status)
}

func TestUpdateStatusCancelFromNonTerminal(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	item := seedMenuItem(t, st, "Maggi", 30)

	for _, from := range []string{models.StatusProcessing, models.StatusPreparing, models.StatusReady} {
		_, err := carts.Add(context.Background(), user.ID.Hex(), item.ID.Hex(), 1)
		require.NoError(t, err)
		order, err := svc.Checkout(context.Background(), user.ID.Hex())
		require.NoError(t, err)

		for _, step := range []string{models.StatusPreparing, models.StatusReady} {
			if order.Status == from {
				break
			}
			order, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), step)
			require.NoError(t, err)
		}

		order, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), models.StatusCancelled)
		require.NoError(t, err, "cancel must be legal from %s", from)
		assert.Equal(t, models.StatusCancelled, order.Status)

		// cancelled is terminal
		_, err = svc.UpdateStatus(context.Background(), order.ID.Hex(), models.StatusPreparing)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	st := memstore.New()
	svc := NewOrderService(st, nil)

	_, err := svc.UpdateStatus(context.Background(), "bad-id", models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestListByUserNewestFirst(t *testing.T) {
	st := memstore.New()
	carts := NewCartService(st)
	svc := NewOrderService(st, nil)
	user := seedUser(t, st)
	item := seedMenuItem(t, st, "Sandwich", 40)

	var numbers []string
	for i := 0; i < 3; i++ {
		_, err := carts.Add(context.Background(), user.ID.Hex(), item.ID.Hex(), 1)
		require.NoError(t, err)
		order, err := svc.Checkout(context.Background(), user.ID.Hex())
		require.NoError(t, err)
		numbers = append(numbers, order.OrderNumber)
	}

	orders, err := svc.ListByUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, numbers[2], orders[0].OrderNumber)
	assert.Equal(t, numbers[0], orders[2].OrderNumber)
}
