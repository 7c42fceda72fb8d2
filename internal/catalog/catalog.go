// Package catalog loads the store's initial product list from a YAML
// document. The catalog is built once at process start; there is no
// persistence behind it.
package catalog

import (
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Mazdaratti/bestbuy/internal/domain/product"
	"github.com/Mazdaratti/bestbuy/internal/domain/promotion"
)

// File is the root of a catalog document.
type File struct {
	Promotions []PromotionSpec `yaml:"promotions"`
	Products   []ProductSpec   `yaml:"products"`
}

// PromotionSpec declares one promotion. Products reference it by name, and
// every product naming it shares the same promotion instance.
type PromotionSpec struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Percent string `yaml:"percent,omitempty"`
}

// ProductSpec declares one product of any variant. Quantity is ignored for
// non_stocked and Maximum applies to limited only.
type ProductSpec struct {
	Name      string `yaml:"name"`
	Variant   string `yaml:"variant"`
	Price     string `yaml:"price"`
	Quantity  int    `yaml:"quantity,omitempty"`
	Maximum   int    `yaml:"maximum,omitempty"`
	Promotion string `yaml:"promotion,omitempty"`
}

// Load reads and parses a catalog document. Files ending in .gz are
// decompressed transparently.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	return Parse(r)
}

// Parse decodes a catalog document from r.
func Parse(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return &file, nil
}

// Build constructs the product list, attaching shared promotion instances.
// Domain constructor errors surface unchanged; the caller never receives a
// half-built catalog.
func (f *File) Build() ([]*product.Product, error) {
	promos := make(map[string]*promotion.Promotion, len(f.Promotions))
	for _, spec := range f.Promotions {
		if _, ok := promos[spec.Name]; ok {
			return nil, errors.Errorf("duplicate promotion %q", spec.Name)
		}
		promo, err := buildPromotion(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "promotion %q", spec.Name)
		}
		promos[spec.Name] = promo
	}

	products := make([]*product.Product, 0, len(f.Products))
	for _, spec := range f.Products {
		p, err := buildProduct(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q", spec.Name)
		}

		for _, existing := range products {
			if existing.Equal(p) {
				return nil, errors.Errorf("duplicate product %q", spec.Name)
			}
		}

		if spec.Promotion != "" {
			promo, ok := promos[spec.Promotion]
			if !ok {
				return nil, errors.Errorf("product %q references unknown promotion %q",
					spec.Name, spec.Promotion)
			}
			p.SetPromotion(promo)
		}
		products = append(products, p)
	}

	return products, nil
}

func buildPromotion(spec PromotionSpec) (*promotion.Promotion, error) {
	switch promotion.Kind(spec.Kind) {
	case promotion.KindSecondHalfPrice:
		return promotion.NewSecondHalfPrice(spec.Name)
	case promotion.KindThirdOneFree:
		return promotion.NewThirdOneFree(spec.Name)
	case promotion.KindPercentDiscount:
		percent, err := decimal.NewFromString(spec.Percent)
		if err != nil {
			return nil, errors.Wrap(err, "parse percent")
		}
		return promotion.NewPercentDiscount(spec.Name, percent)
	default:
		return nil, errors.Errorf("unsupported promotion kind %q", spec.Kind)
	}
}

func buildProduct(spec ProductSpec) (*product.Product, error) {
	price, err := decimal.NewFromString(spec.Price)
	if err != nil {
		return nil, errors.Wrap(err, "parse price")
	}

	switch product.Variant(spec.Variant) {
	case product.VariantStandard, "":
		return product.NewStandard(spec.Name, price, spec.Quantity)
	case product.VariantNonStocked:
		return product.NewNonStocked(spec.Name, price)
	case product.VariantLimited:
		return product.NewLimited(spec.Name, price, spec.Quantity, spec.Maximum)
	default:
		return nil, errors.Errorf("unsupported product variant %q", spec.Variant)
	}
}
