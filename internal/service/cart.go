package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"greencart/shophub/internal/model"
	"greencart/shophub/internal/repository"
)

const (
	minDiscountPercent = 5
	maxDiscountPercent = 30

	// score assumed for a product that carries no sustainability data
	defaultSustainabilityScore = 50
)

type CartService interface {
	// ReplaceCart swaps the user's cart and appends any client-supplied
	// reward grants to the ledger.
	ReplaceCart(ctx context.Context, userID string, items []model.CartItem, grants []model.RewardGrant) (model.CartSummary, error)
	ComputeCartView(ctx context.Context, userID string) (model.CartView, error)
}

type cartService struct {
	carts   repository.CartStore
	ledger  repository.RewardLedger
	catalog repository.Catalog
}

func NewCartService(carts repository.CartStore, ledger repository.RewardLedger, catalog repository.Catalog) CartService {
	return &cartService{carts: carts, ledger: ledger, catalog: catalog}
}

func (s *cartService) ReplaceCart(ctx context.Context, userID string, items []model.CartItem, grants []model.RewardGrant) (model.CartSummary, error) {
	if userID == "" {
		return model.CartSummary{}, ErrUserIDRequired
	}

	if err := s.carts.Replace(ctx, userID, items); err != nil {
		return model.CartSummary{}, fmt.Errorf("replace cart: %w", err)
	}

	for _, grant := range grants {
		if grant.ProductID == "" {
			continue
		}
		reward := model.Reward{
			ID:              uuid.New(),
			ProductID:       grant.ProductID,
			DiscountPercent: clampDiscount(grant.DiscountPercent),
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.ledger.Append(ctx, userID, reward); err != nil {
			return model.CartSummary{}, fmt.Errorf("append reward: %w", err)
		}
	}

	stored, err := s.carts.Get(ctx, userID)
	if err != nil {
		return model.CartSummary{}, fmt.Errorf("get cart: %w", err)
	}
	view, err := s.ComputeCartView(ctx, userID)
	if err != nil {
		return model.CartSummary{}, err
	}

	return model.CartSummary{
		CartSize: len(stored),
		Metrics:  view.SustainabilityImpact,
	}, nil
}

// ComputeCartView prices the user's cart. Line items whose product id is
// not in the catalog are skipped without error. When a product has more
// than one reward, the earliest-granted matching reward applies.
func (s *cartService) ComputeCartView(ctx context.Context, userID string) (model.CartView, error) {
	if userID == "" {
		return model.CartView{}, ErrUserIDRequired
	}

	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		return model.CartView{}, fmt.Errorf("get cart: %w", err)
	}
	if len(items) == 0 {
		return emptyCartView(), nil
	}

	rewards, err := s.ledger.List(ctx, userID)
	if err != nil {
		return model.CartView{}, fmt.Errorf("list rewards: %w", err)
	}

	view := model.CartView{Items: []model.CartLine{}}
	var (
		subtotal      decimal.Decimal
		totalDiscount decimal.Decimal
		totalCarbon   float64
		scoreSum      int
		scored        int
	)

	for _, item := range items {
		product, ok := s.catalog.Lookup(item.ProductID)
		if !ok {
			continue
		}

		itemTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		line := model.CartLine{
			ProductID: item.ProductID,
			Title:     product.Title,
			Quantity:  item.Quantity,
			UnitPrice: model.FormatMoney(product.Price),
			ItemTotal: model.FormatMoney(itemTotal),
		}

		discount := decimal.Zero
		if reward, ok := firstReward(rewards, item.ProductID); ok {
			discount = itemTotal.Mul(decimal.NewFromInt(int64(reward.DiscountPercent))).Div(decimal.NewFromInt(100))
			line.DiscountPercent = reward.DiscountPercent
			line.DiscountAmount = model.FormatMoney(discount)
		}
		line.FinalPrice = model.FormatMoney(itemTotal.Sub(discount))

		subtotal = subtotal.Add(itemTotal)
		totalDiscount = totalDiscount.Add(discount)
		totalCarbon += product.CarbonFootprint * float64(item.Quantity)

		score := product.SustainabilityScore
		if score == 0 {
			score = defaultSustainabilityScore
		}
		scoreSum += score
		scored++

		view.Items = append(view.Items, line)
	}

	if len(view.Items) == 0 {
		return emptyCartView(), nil
	}

	cartScore := int(math.Round(float64(scoreSum) / float64(scored)))
	view.Subtotal = model.FormatMoney(subtotal)
	view.TotalDiscount = model.FormatMoney(totalDiscount)
	view.Total = model.FormatMoney(subtotal.Sub(totalDiscount))
	view.SustainabilityImpact = model.SustainabilityMetrics{
		Score:         cartScore,
		TotalCarbonKg: round2(totalCarbon),
		Rating:        model.RatingForScore(cartScore),
	}
	return view, nil
}

// firstReward returns the earliest-granted reward for the product.
// Forward scan order is deliberate: later or larger rewards for the same
// product never displace the first one.
func firstReward(rewards []model.Reward, productID string) (model.Reward, bool) {
	for _, r := range rewards {
		if r.ProductID == productID {
			return r, true
		}
	}
	return model.Reward{}, false
}

func emptyCartView() model.CartView {
	zero := model.FormatMoney(decimal.Zero)
	return model.CartView{
		Items:         []model.CartLine{},
		Subtotal:      zero,
		TotalDiscount: zero,
		Total:         zero,
		SustainabilityImpact: model.SustainabilityMetrics{
			Score:         0,
			TotalCarbonKg: 0,
		},
	}
}

func clampDiscount(pct int) int {
	if pct < minDiscountPercent {
		return minDiscountPercent
	}
	if pct > maxDiscountPercent {
		return maxDiscountPercent
	}
	return pct
}
