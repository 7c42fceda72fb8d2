package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Mazdaratti/bestbuy/internal/domain/product"
)

// ProductNotFoundError indicates an order line referenced a product that is
// not a member of the store's catalog.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("there is no %s in the store", e.Name)
}

// Line is one (product, quantity) entry of an order batch.
type Line struct {
	Product  *product.Product
	Quantity int
}

// Store is an insertion-ordered catalog of products with no duplicates by
// product equality. It orchestrates multi-item orders: each line commits
// individually and a failure partway through is not rolled back.
//
// The store itself performs no locking; embed it behind a single
// mutual-exclusion boundary when calls can be concurrent.
type Store struct {
	products []*product.Product
}

// New creates a store holding the given initial catalog, dropping
// duplicates by product equality while preserving first-seen order.
func New(products ...*product.Product) *Store {
	s := &Store{products: make([]*product.Product, 0, len(products))}
	for _, p := range products {
		s.Add(p)
	}
	return s
}

// Contains reports catalog membership by product equality.
func (s *Store) Contains(p *product.Product) bool {
	return s.find(p) >= 0
}

func (s *Store) find(p *product.Product) int {
	for i, existing := range s.products {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

// Add inserts a product unless an equal one is already present. It reports
// whether the product was inserted; a duplicate is a no-op, not an error.
func (s *Store) Add(p *product.Product) bool {
	if p == nil || s.Contains(p) {
		return false
	}
	s.products = append(s.products, p)
	return true
}

// Remove deletes the product equal to p. It reports whether anything was
// removed; removing an absent product is a no-op, not an error.
func (s *Store) Remove(p *product.Product) bool {
	i := s.find(p)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true
}

// TotalQuantity sums stock across the whole catalog. Inactive products
// count too: stock pending restock is still inventory.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the purchasable products in insertion order.
func (s *Store) ActiveProducts() []*product.Product {
	active := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// Products returns the full catalog, inactive members included, in
// insertion order.
func (s *Store) Products() []*product.Product {
	all := make([]*product.Product, len(s.products))
	copy(all, s.products)
	return all
}

// Order processes the batch line by line and returns the charged total.
// Each line is resolved against the catalog by equality and bought on the
// catalog member, so stock bookkeeping lands on the store's own products.
//
// Failure policy: fail fast, no rollback. Lines bought before the failing
// one stay decremented; the first error propagates and no total is
// returned. The caller decides how to report partial completion.
func (s *Store) Order(lines []Line) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		i := s.find(line.Product)
		if i < 0 {
			name := ""
			if line.Product != nil {
				name = line.Product.Name()
			}
			return decimal.Zero, &ProductNotFoundError{Name: name}
		}

		charged, err := s.products[i].Buy(line.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(charged)
	}
	return total, nil
}
