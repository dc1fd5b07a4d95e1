package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainOrder "pet-shop-api/internal/domain/order"
	appErrors "pet-shop-api/pkg/errors"
)

var (
	// FreeDeliveryThreshold is exclusive: an amount of exactly 500 still pays the fee.
	FreeDeliveryThreshold = decimal.NewFromInt(500)
	StandardDeliveryFee   = decimal.NewFromInt(15)
)

// PriceSource resolves current product prices in one lookup.
type PriceSource interface {
	PricesByUUID(ctx context.Context, uuids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

// Quote is the priced form of a basket.
type Quote struct {
	Items       []domainOrder.LineItem
	Amount      decimal.Decimal
	DeliveryFee decimal.Decimal
	// Missing lists products that no longer exist; they do not count towards Amount.
	Missing []uuid.UUID
}

type Pricer struct {
	prices PriceSource
	strict bool
}

// NewPricer returns a pricer. With strict set, baskets naming unknown products are rejected.
func NewPricer(prices PriceSource, strict bool) *Pricer {
	return &Pricer{prices: prices, strict: strict}
}

func (p *Pricer) Price(ctx context.Context, items []domainOrder.LineItem) (*Quote, error) {
	merged, err := mergeItems(items)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(merged))
	for i, item := range merged {
		ids[i] = item.Product
	}

	prices, err := p.prices.PricesByUUID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load product prices: %w", err)
	}

	quote := &Quote{Items: merged, Amount: decimal.Zero}
	for _, item := range merged {
		price, ok := prices[item.Product]
		if !ok {
			quote.Missing = append(quote.Missing, item.Product)
			continue
		}
		quote.Amount = quote.Amount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if p.strict && len(quote.Missing) > 0 {
		names := make([]string, len(quote.Missing))
		for i, id := range quote.Missing {
			names[i] = id.String()
		}
		return nil, appErrors.NewValidationError("Invalid input", map[string]string{
			"products": "Unknown products: " + strings.Join(names, ", "),
		})
	}

	quote.Amount = quote.Amount.Round(2)
	quote.DeliveryFee = DeliveryFeeFor(quote.Amount)

	return quote, nil
}

func DeliveryFeeFor(amount decimal.Decimal) decimal.Decimal {
	if amount.GreaterThan(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return StandardDeliveryFee
}

// mergeItems sums the quantities of repeated products, keeping first-seen order.
func mergeItems(items []domainOrder.LineItem) ([]domainOrder.LineItem, error) {
	fields := map[string]string{}
	index := make(map[uuid.UUID]int, len(items))
	merged := make([]domainOrder.LineItem, 0, len(items))

	for i, item := range items {
		if item.Quantity <= 0 {
			fields[fmt.Sprintf("products[%d].quantity", i)] = "The quantity must be greater than 0."
			continue
		}
		if at, ok := index[item.Product]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.Product] = len(merged)
		merged = append(merged, item)
	}

	if len(fields) > 0 {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}
	if len(merged) == 0 {
		return nil, appErrors.NewValidationError("Invalid input", map[string]string{
			"products": "The products field is required.",
		})
	}

	return merged, nil
}
