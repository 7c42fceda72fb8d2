package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Mazdaratti/bestbuy/internal/domain/promotion"
)

// Variant enumerates the product behaviours in the catalog.
type Variant string

const (
	// VariantStandard is a regular stocked product.
	VariantStandard Variant = "standard"
	// VariantNonStocked is a digital product without physical stock.
	VariantNonStocked Variant = "non_stocked"
	// VariantLimited is a stocked product with a per-order purchase cap.
	VariantLimited Variant = "limited"
)

// Product is a catalog item. It is a closed three-variant type: the variant
// tag decides the stock bookkeeping rules while pricing is delegated
// uniformly to the attached promotion.
//
// Equality is value-based on (name, price), never identity: two products
// naming the same catalog line compare equal regardless of their current
// stock. Ordering compares price only.
type Product struct {
	name     string
	price    decimal.Decimal
	quantity int
	active   bool
	variant  Variant
	maximum  int
	promo    *promotion.Promotion
}

// NewStandard creates a regular stocked product.
func NewStandard(name string, price decimal.Decimal, quantity int) (*Product, error) {
	if err := validate(name, price, quantity); err != nil {
		return nil, err
	}
	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity > 0,
		variant:  VariantStandard,
	}, nil
}

// NewNonStocked creates a digital product. Its quantity is pinned at zero
// and it stays purchasable regardless.
func NewNonStocked(name string, price decimal.Decimal) (*Product, error) {
	if err := validate(name, price, 0); err != nil {
		return nil, err
	}
	return &Product{
		name:    name,
		price:   price,
		active:  true,
		variant: VariantNonStocked,
	}, nil
}

// NewLimited creates a stocked product capped at maximum units per order.
func NewLimited(name string, price decimal.Decimal, quantity, maximum int) (*Product, error) {
	if err := validate(name, price, quantity); err != nil {
		return nil, err
	}
	if maximum < 1 {
		return nil, &ValidationError{Reason: "maximum must be a positive number"}
	}
	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity > 0,
		variant:  VariantLimited,
		maximum:  maximum,
	}, nil
}

func validate(name string, price decimal.Decimal, quantity int) error {
	if name == "" {
		return &ValidationError{Reason: "name must not be empty"}
	}
	if price.IsNegative() {
		return &ValidationError{Reason: "price must not be negative"}
	}
	if quantity < 0 {
		return &ValidationError{Reason: "quantity must not be negative"}
	}
	return nil
}

// Name returns the product name, the catalog key.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Variant returns the product's behaviour tag.
func (p *Product) Variant() Variant { return p.variant }

// Maximum returns the per-order cap for Limited products and 0 otherwise.
func (p *Product) Maximum() int { return p.maximum }

// Quantity returns the current stock level. Always 0 for NonStocked.
func (p *Product) Quantity() int { return p.quantity }

// Active reports whether the product is currently purchasable.
func (p *Product) Active() bool { return p.active }

// Promotion returns the attached promotion, or nil.
func (p *Product) Promotion() *promotion.Promotion { return p.promo }

// SetPromotion attaches a promotion. The promotion is shared, not owned:
// the same instance may be attached to any number of products. A nil
// promotion detaches.
func (p *Product) SetPromotion(promo *promotion.Promotion) {
	p.promo = promo
}

// SetQuantity replaces the stock level. Reaching zero deactivates the
// product; restocking does not reactivate it, that stays an explicit call.
// NonStocked products reject any quantity change.
func (p *Product) SetQuantity(quantity int) error {
	if p.variant == VariantNonStocked {
		return &ValidationError{Reason: fmt.Sprintf("%s has no stock to set", p.name)}
	}
	if quantity < 0 {
		return &ValidationError{Reason: "quantity must not be negative"}
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.active = false
	}
	return nil
}

// Activate marks the product purchasable again after a restock or a manual
// deactivation.
func (p *Product) Activate() { p.active = true }

// Deactivate withdraws the product from sale without touching its stock.
func (p *Product) Deactivate() { p.active = false }

// Buy purchases quantity units, decrements stock where the variant has any,
// and returns the charged total (promotion-priced when one is attached,
// rounded to 2 decimal places). A failed purchase never mutates state.
func (p *Product) Buy(quantity int) (decimal.Decimal, error) {
	if !p.active {
		return decimal.Zero, &InactiveProductError{Name: p.name}
	}
	if quantity <= 0 {
		return decimal.Zero, &InvalidQuantityError{Name: p.name, Requested: quantity}
	}
	if p.variant == VariantLimited && quantity > p.maximum {
		return decimal.Zero, &MaximumExceededError{
			Name:      p.name,
			Requested: quantity,
			Maximum:   p.maximum,
		}
	}
	if p.variant != VariantNonStocked {
		if quantity > p.quantity {
			return decimal.Zero, &InsufficientStockError{
				Name:      p.name,
				Requested: quantity,
				Available: p.quantity,
			}
		}
		p.quantity -= quantity
		if p.quantity == 0 {
			p.active = false
		}
	}

	if p.promo != nil {
		return p.promo.Apply(p.price, quantity).Round(2), nil
	}
	return p.price.Mul(decimal.NewFromInt(int64(quantity))).Round(2), nil
}

// Equal reports value equality on (name, price).
func (p *Product) Equal(other *Product) bool {
	if other == nil {
		return false
	}
	return p.name == other.name && p.price.Equal(other.price)
}

// Less orders products by price, for display sorting only.
func (p *Product) Less(other *Product) bool {
	return p.price.LessThan(other.price)
}

// Key is the comparable form of a product's catalog identity, usable as a
// map key for cart aggregation. Products that are Equal share a Key.
type Key struct {
	Name  string
	Price string
}

// Key returns the product's aggregation key.
func (p *Product) Key() Key {
	return Key{Name: p.name, Price: p.price.String()}
}

// Summary renders the human-readable catalog line for the product.
func (p *Product) Summary() string {
	if !p.active {
		return fmt.Sprintf("%s is out of stock.", p.name)
	}

	promoName := "None"
	if p.promo != nil {
		promoName = p.promo.Name()
	}

	switch p.variant {
	case VariantNonStocked:
		return fmt.Sprintf("%s, Price: %s, Quantity: Unlimited, Promotion: %s",
			p.name, p.price, promoName)
	case VariantLimited:
		return fmt.Sprintf("%s, Price: %s, Limited to %d per order, Quantity: %d, Promotion: %s",
			p.name, p.price, p.maximum, p.quantity, promoName)
	default:
		return fmt.Sprintf("%s, Price: %s, Quantity: %d, Promotion: %s",
			p.name, p.price, p.quantity, promoName)
	}
}

// String implements fmt.Stringer via Summary.
func (p *Product) String() string { return p.Summary() }
