package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencart/shophub/internal/model"
	"greencart/shophub/internal/repository"
)

func testCatalog() repository.Catalog {
	return repository.NewStaticCatalog([]model.Product{
		{
			ID:                  "1",
			Title:               "Premium Gaming Chair",
			Price:               decimal.NewFromFloat(99.99),
			SustainabilityScore: 85,
			CarbonFootprint:     18.5,
		},
		{
			ID:                  "2",
			Title:               "Gaming Headset",
			Price:               decimal.NewFromFloat(39.99),
			SustainabilityScore: 62,
			CarbonFootprint:     4.2,
		},
		{
			ID:    "unscored",
			Title: "Mystery Item",
			Price: decimal.NewFromFloat(10.00),
		},
	})
}

func newCartFixture() (CartService, repository.CartStore, repository.RewardLedger) {
	carts := repository.NewMemoryCartStore()
	ledger := repository.NewMemoryRewardLedger()
	return NewCartService(carts, ledger, testCatalog()), carts, ledger
}

func grant(t *testing.T, ledger repository.RewardLedger, userID, productID string, pct int) {
	t.Helper()
	err := ledger.Append(context.Background(), userID, model.Reward{
		ID:              uuid.New(),
		ProductID:       productID,
		DiscountPercent: pct,
		CreatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestComputeCartView_EmptyCartCanonicalZero(t *testing.T) {
	svc, _, _ := newCartFixture()

	view, err := svc.ComputeCartView(context.Background(), "alice")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.NotNil(t, view.Items)
	assert.Equal(t, "$0.00", view.Total)
	assert.Equal(t, "$0.00", view.Subtotal)
	assert.Equal(t, "$0.00", view.TotalDiscount)
	assert.Equal(t, 0, view.SustainabilityImpact.Score)
}

func TestComputeCartView_WorkedExample(t *testing.T) {
	// Product "1" at $99.99, quantity 2, one 20% reward:
	// subtotal $199.98, discount $39.996 -> $40.00, final $159.98.
	svc, carts, ledger := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{{ProductID: "1", Quantity: 2}}))
	grant(t, ledger, "alice", "1", 20)

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	line := view.Items[0]
	assert.Equal(t, "$199.98", line.ItemTotal)
	assert.Equal(t, 20, line.DiscountPercent)
	assert.Equal(t, "$40.00", line.DiscountAmount)
	assert.Equal(t, "$159.98", line.FinalPrice)

	assert.Equal(t, "$199.98", view.Subtotal)
	assert.Equal(t, "$40.00", view.TotalDiscount)
	assert.Equal(t, "$159.98", view.Total)
	assert.Equal(t, 85, view.SustainabilityImpact.Score)
	assert.InDelta(t, 37.0, view.SustainabilityImpact.TotalCarbonKg, 0.001)
}

func TestComputeCartView_FirstGrantedRewardWins(t *testing.T) {
	svc, carts, ledger := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{{ProductID: "1", Quantity: 1}}))
	grant(t, ledger, "alice", "1", 10)
	grant(t, ledger, "alice", "1", 30)
	grant(t, ledger, "alice", "1", 25)

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 10, view.Items[0].DiscountPercent)
}

func TestComputeCartView_UnknownProductSkippedSilently(t *testing.T) {
	svc, carts, _ := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{
		{ProductID: "ghost", Quantity: 4},
		{ProductID: "2", Quantity: 1},
	}))

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].ProductID)
	assert.Equal(t, "$39.99", view.Subtotal)
}

func TestComputeCartView_OnlyUnknownProductsYieldsEmptyView(t *testing.T) {
	svc, carts, _ := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{{ProductID: "ghost", Quantity: 1}}))

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Equal(t, "$0.00", view.Total)
	assert.Equal(t, 0, view.SustainabilityImpact.Score)
}

func TestComputeCartView_PricingInvariants(t *testing.T) {
	svc, carts, ledger := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{
		{ProductID: "1", Quantity: 3},
		{ProductID: "2", Quantity: 2},
	}))
	grant(t, ledger, "alice", "2", 15)

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	parse := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s[1:])
		require.NoError(t, err)
		return d
	}

	var finalSum decimal.Decimal
	for _, line := range view.Items {
		itemTotal := parse(line.ItemTotal)
		final := parse(line.FinalPrice)
		discount := decimal.Zero
		if line.DiscountAmount != "" {
			discount = parse(line.DiscountAmount)
		}
		assert.True(t, final.Equal(itemTotal.Sub(discount)),
			"finalPrice must equal itemTotal - discountAmount for %s", line.ProductID)
		finalSum = finalSum.Add(final)
	}

	expected := parse(view.Subtotal).Sub(parse(view.TotalDiscount))
	assert.InDelta(t, expected.InexactFloat64(), finalSum.InexactFloat64(), 0.01)
}

func TestComputeCartView_UnscoredProductDefaultsTo50(t *testing.T) {
	svc, carts, _ := newCartFixture()
	ctx := context.Background()

	require.NoError(t, carts.Replace(ctx, "alice", []model.CartItem{{ProductID: "unscored", Quantity: 1}}))

	view, err := svc.ComputeCartView(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, view.SustainabilityImpact.Score)
}

func TestReplaceCart_ReturnsSizeAndMetrics(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	summary, err := svc.ReplaceCart(ctx, "alice", []model.CartItem{
		{ProductID: "1", Quantity: 1},
		{ProductID: "2", Quantity: 1},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.CartSize)
	// mean of 85 and 62, rounded
	assert.Equal(t, 74, summary.Metrics.Score)
}

func TestReplaceCart_AppendsClampedGrants(t *testing.T) {
	svc, _, ledger := newCartFixture()
	ctx := context.Background()

	_, err := svc.ReplaceCart(ctx, "alice", []model.CartItem{{ProductID: "1", Quantity: 1}}, []model.RewardGrant{
		{ProductID: "1", DiscountPercent: 99},
		{ProductID: "2", DiscountPercent: 1},
		{ProductID: "", DiscountPercent: 20},
	})
	require.NoError(t, err)

	rewards, err := ledger.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, 30, rewards[0].DiscountPercent)
	assert.Equal(t, 5, rewards[1].DiscountPercent)
	assert.Nil(t, rewards[0].ExpiresAt)
}

func TestReplaceCart_EmptyUserIDRejected(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.ReplaceCart(context.Background(), "", nil, nil)
	assert.ErrorIs(t, err, ErrUserIDRequired)
}
