package promotion

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind enumerates the supported promotion strategies.
type Kind string

const (
	// KindSecondHalfPrice charges every second unit at half price.
	KindSecondHalfPrice Kind = "second_half_price"
	// KindThirdOneFree makes every third unit free.
	KindThirdOneFree Kind = "third_one_free"
	// KindPercentDiscount takes a flat percentage off every unit.
	KindPercentDiscount Kind = "percent_discount"
)

// ConfigurationError indicates a promotion was constructed with invalid
// parameters.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid promotion: %s", e.Reason)
}

var (
	// pairRate is what a pair of units costs when the second one is half price.
	pairRate = decimal.RequireFromString("1.5")
	hundred  = decimal.NewFromInt(100)
)

// Promotion is an immutable discount strategy attached to products at
// purchase time. The same instance may be shared by any number of products.
type Promotion struct {
	name    string
	kind    Kind
	percent decimal.Decimal
}

// NewSecondHalfPrice returns a promotion charging every second unit at half
// price.
func NewSecondHalfPrice(name string) (*Promotion, error) {
	if name == "" {
		return nil, &ConfigurationError{Reason: "name must not be empty"}
	}
	return &Promotion{name: name, kind: KindSecondHalfPrice}, nil
}

// NewThirdOneFree returns a promotion making every third unit free.
func NewThirdOneFree(name string) (*Promotion, error) {
	if name == "" {
		return nil, &ConfigurationError{Reason: "name must not be empty"}
	}
	return &Promotion{name: name, kind: KindThirdOneFree}, nil
}

// NewPercentDiscount returns a promotion taking percent off every unit.
// The percentage must lie within [0, 100].
func NewPercentDiscount(name string, percent decimal.Decimal) (*Promotion, error) {
	if name == "" {
		return nil, &ConfigurationError{Reason: "name must not be empty"}
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("percent %s outside [0, 100]", percent),
		}
	}
	return &Promotion{name: name, kind: KindPercentDiscount, percent: percent}, nil
}

// Name returns the display name of the promotion.
func (p *Promotion) Name() string { return p.name }

// Kind returns the strategy tag of the promotion.
func (p *Promotion) Kind() Kind { return p.kind }

// String implements fmt.Stringer with the promotion's display name.
func (p *Promotion) String() string { return p.name }

// Apply calculates the charged total for quantity units at unitPrice.
// It is a pure function: no state is read beyond the promotion's own
// immutable parameters and nothing is mutated.
func (p *Promotion) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))

	switch p.kind {
	case KindSecondHalfPrice:
		if quantity < 2 {
			return unitPrice.Mul(qty)
		}
		pairs := decimal.NewFromInt(int64(quantity / 2))
		rest := decimal.NewFromInt(int64(quantity % 2))
		return unitPrice.Mul(pairs.Mul(pairRate).Add(rest))
	case KindThirdOneFree:
		if quantity < 3 {
			return unitPrice.Mul(qty)
		}
		charged := decimal.NewFromInt(int64(quantity - quantity/3))
		return unitPrice.Mul(charged)
	case KindPercentDiscount:
		// Discounted unit price times quantity, so the result is a total
		// like the other strategies.
		return unitPrice.Mul(hundred.Sub(p.percent)).Div(hundred).Mul(qty)
	default:
		return unitPrice.Mul(qty)
	}
}
