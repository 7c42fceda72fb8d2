package catalog

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mazdaratti/bestbuy/internal/domain/product"
	"github.com/Mazdaratti/bestbuy/internal/domain/promotion"
)

const testCatalog = `
promotions:
  - name: "Second Half price!"
    kind: second_half_price
  - name: "30% off!"
    kind: percent_discount
    percent: "30"
products:
  - name: MacBook Air M2
    variant: standard
    price: "1450"
    quantity: 100
    promotion: "Second Half price!"
  - name: Windows License
    variant: non_stocked
    price: "125"
    promotion: "30% off!"
  - name: Shipping
    variant: limited
    price: "10"
    quantity: 250
    maximum: 1
`

func TestParseAndBuild(t *testing.T) {
	file, err := Parse(strings.NewReader(testCatalog))
	require.NoError(t, err)

	products, err := file.Build()
	require.NoError(t, err)
	require.Len(t, products, 3)

	mac := products[0]
	assert.Equal(t, product.VariantStandard, mac.Variant())
	assert.Equal(t, 100, mac.Quantity())
	require.NotNil(t, mac.Promotion())
	assert.Equal(t, "Second Half price!", mac.Promotion().Name())

	license := products[1]
	assert.Equal(t, product.VariantNonStocked, license.Variant())
	assert.Equal(t, 0, license.Quantity())
	require.NotNil(t, license.Promotion())
	assert.Equal(t, promotion.KindPercentDiscount, license.Promotion().Kind())

	shipping := products[2]
	assert.Equal(t, product.VariantLimited, shipping.Variant())
	assert.Equal(t, 1, shipping.Maximum())
	assert.Nil(t, shipping.Promotion())
}

func TestBuild_SharedPromotionInstance(t *testing.T) {
	file, err := Parse(strings.NewReader(`
promotions:
  - name: "30% off!"
    kind: percent_discount
    percent: "30"
products:
  - name: First
    price: "10"
    quantity: 1
    promotion: "30% off!"
  - name: Second
    price: "20"
    quantity: 1
    promotion: "30% off!"
`))
	require.NoError(t, err)

	products, err := file.Build()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Same(t, products[0].Promotion(), products[1].Promotion(),
		"products naming the same promotion share one instance")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantText string
	}{
		{
			name: "unknown promotion reference",
			document: `
products:
  - name: Widget
    price: "10"
    quantity: 1
    promotion: "Ghost"
`,
			wantText: "unknown promotion",
		},
		{
			name: "duplicate product",
			document: `
products:
  - name: Widget
    price: "10"
    quantity: 1
  - name: Widget
    price: "10"
    quantity: 5
`,
			wantText: "duplicate product",
		},
		{
			name: "duplicate promotion",
			document: `
promotions:
  - name: "Promo"
    kind: third_one_free
  - name: "Promo"
    kind: second_half_price
products: []
`,
			wantText: "duplicate promotion",
		},
		{
			name: "invalid product surfaces constructor error",
			document: `
products:
  - name: Widget
    price: "-10"
    quantity: 1
`,
			wantText: "price must not be negative",
		},
		{
			name: "percent out of range",
			document: `
promotions:
  - name: "Too much"
    kind: percent_discount
    percent: "120"
products: []
`,
			wantText: "outside [0, 100]",
		},
		{
			name: "unsupported variant",
			document: `
products:
  - name: Widget
    variant: holographic
    price: "10"
    quantity: 1
`,
			wantText: "unsupported product variant",
		},
		{
			name: "unsupported promotion kind",
			document: `
promotions:
  - name: "Promo"
    kind: mystery
products: []
`,
			wantText: "unsupported promotion kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(strings.NewReader(tt.document))
			require.NoError(t, err)

			_, err = file.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse(strings.NewReader(`
products:
  - name: Widget
    cost: "10"
`))
	require.Error(t, err)
}

func TestLoad_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(testCatalog))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	file, err := Load(path)
	require.NoError(t, err)

	products, err := file.Build()
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
