package ingest

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
)

const salesHeader = "CustomerID,Customer Age,Gender,Products,MRP,Discount Percentage,Category,Location,CustomerType,Advertisement,Returned,Date,Total,Order Type,Quantity,Discount Price,Month\n"

func readSales(t *testing.T, csv string) []model.SaleRecord {
	t.Helper()
	stream, err := SalesSchema.Stream(strings.NewReader(csv))
	require.NoError(t, err)
	recs, err := stream.ReadAll()
	require.NoError(t, err)
	return recs
}

func TestSalesNormalize_Defaults(t *testing.T) {
	// One row of nothing but commas: every field falls back to its sentinel.
	recs := readSales(t, salesHeader+",,,,,,,,,,,,,,,,\n")
	require.Len(t, recs, 1)
	r := recs[0]

	assert.Equal(t, "N/A", r.CustomerID)
	assert.Equal(t, "N/A", r.CustomerAge)
	assert.Equal(t, "Unknown", r.Gender)
	assert.Equal(t, "N/A", r.ProductName)
	assert.True(t, r.MRP.IsZero())
	assert.True(t, r.DiscountPercentage.IsZero())
	assert.Equal(t, "N/A", r.Category)
	assert.Equal(t, "Unknown", r.Location)
	assert.Equal(t, "N/A", r.CustomerType)
	assert.Equal(t, "None", r.Advertisement)
	assert.Equal(t, 0, r.Returned)
	assert.Nil(t, r.Total)
	assert.Equal(t, "Standard", r.OrderType)
	assert.Equal(t, 0, r.Quantity)
	assert.True(t, r.DiscountPrice.IsZero())
	assert.Equal(t, "Unknown", r.Month)

	// Missing date defaults to today's calendar date (UTC, midnight)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, r.Date)
}

func TestSalesNormalize_MissingColumnsEqualEmptyCells(t *testing.T) {
	// A file that only carries two columns yields the same record as one
	// carrying every column with empty values.
	short, err := SalesSchema.Stream(strings.NewReader("Products,Quantity\nSoap,3\n"))
	require.NoError(t, err)
	shortRecs, err := short.ReadAll()
	require.NoError(t, err)

	full := readSales(t, salesHeader+",,,Soap,,,,,,,,,,,3,,\n")
	require.Len(t, shortRecs, 1)
	assert.Equal(t, full[0], shortRecs[0])
}

func TestSalesNormalize_TotalPolicy(t *testing.T) {
	cases := []struct {
		raw  string
		want *decimal.Decimal
	}{
		{"199.90", ptr(decimal.NewFromFloat(199.90))},
		{"Cancelled", nil},
		{"RETURNED", nil},
		{"garbage", nil},
		{"-5", nil},
	}
	for _, tc := range cases {
		recs := readSales(t, salesHeader+",,,Soap,,,,,,,,2024-01-02,"+tc.raw+",,1,,\n")
		require.Len(t, recs, 1)
		if tc.want == nil {
			assert.Nil(t, recs[0].Total, "raw=%q", tc.raw)
		} else {
			require.NotNil(t, recs[0].Total, "raw=%q", tc.raw)
			assert.True(t, tc.want.Equal(*recs[0].Total), "raw=%q", tc.raw)
		}
	}
}

func TestSalesNormalize_QuantityFallbacks(t *testing.T) {
	for raw, want := range map[string]int{
		"4":    4,
		"4.9":  4,  // decimal representation truncates
		"-2":   0,  // negative falls back
		"four": 0,
		"":     0,
	} {
		recs := readSales(t, salesHeader+",,,Soap,,,,,,,,,,,"+raw+",,\n")
		require.Len(t, recs, 1)
		assert.Equal(t, want, recs[0].Quantity, "raw=%q", raw)
	}
}

func TestSalesNormalize_InputOrderPreserved(t *testing.T) {
	recs := readSales(t, salesHeader+
		",,,First,,,,,,,,,,,1,,\n"+
		",,,Second,,,,,,,,,,,2,,\n"+
		",,,Third,,,,,,,,,,,3,,\n")
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{recs[0].ProductName, recs[1].ProductName, recs[2].ProductName})
}

func TestSalesNormalize_Idempotent(t *testing.T) {
	row := Row{"Products": " Soap ", "Quantity": "2", "Total": "10.50", "Date": "2024-03-04"}
	a := SalesSchema.Normalize(row)
	b := SalesSchema.Normalize(row)
	assert.Equal(t, a, b)
	assert.Equal(t, "Soap", a.ProductName) // cells are trimmed before parsing
}

func TestStream_MalformedAbortsWholeRead(t *testing.T) {
	// Unterminated quote mid-file: rows before the break must not leak out.
	bad := salesHeader +
		",,,Fine,,,,,,,,,,,1,,\n" +
		`,,,"broken` + "\n"
	stream, err := SalesSchema.Stream(strings.NewReader(bad))
	require.NoError(t, err)
	recs, err := stream.ReadAll()
	assert.ErrorIs(t, err, ErrMalformedStream)
	assert.Nil(t, recs)
}

func TestStream_EmptyInputIsMalformed(t *testing.T) {
	_, err := SalesSchema.Stream(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformedStream)
}

func TestStream_HeaderOnlyYieldsNoRecords(t *testing.T) {
	stream, err := SalesSchema.Stream(strings.NewReader(salesHeader))
	require.NoError(t, err)
	recs, err := stream.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStockNormalize_ColumnMapping(t *testing.T) {
	csv := "Product Name,Quantity,Price,Discounted Price,Category,SubCategory\n" +
		"Soap,10,49.90,39.90,Care,Bath\n"
	stream, err := StockSchema.Stream(strings.NewReader(csv))
	require.NoError(t, err)
	rows, err := stream.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Soap", r.ProductName)
	assert.Equal(t, 10, r.Quantity)
	// "Price" is the MRP, "Discounted Price" the selling price
	require.NotNil(t, r.MRP)
	assert.True(t, decimal.NewFromFloat(49.90).Equal(*r.MRP))
	require.NotNil(t, r.Price)
	assert.True(t, decimal.NewFromFloat(39.90).Equal(*r.Price))
	assert.Equal(t, "Care", r.Category)
	assert.Equal(t, "Bath", r.SubCategory)
}

func TestStockNormalize_NegativePriceBecomesNull(t *testing.T) {
	csv := "Product Name,Quantity,Price,Discounted Price,Category,SubCategory\n" +
		"Soap,5,-1,-2,,\n"
	stream, err := StockSchema.Stream(strings.NewReader(csv))
	require.NoError(t, err)
	rows, err := stream.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].MRP)
	assert.Nil(t, rows[0].Price)
	assert.Equal(t, "Unknown", rows[0].Category)
	assert.Equal(t, "Unknown", rows[0].SubCategory)
}

func TestStockNormalize_EmptyNameHasNoSentinel(t *testing.T) {
	csv := "Product Name,Quantity,Price,Discounted Price,Category,SubCategory\n" +
		",5,10,8,Care,Bath\n"
	stream, err := StockSchema.Stream(strings.NewReader(csv))
	require.NoError(t, err)
	rows, err := stream.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The import transaction rejects this row; normalization must not mask it.
	assert.Equal(t, "", rows[0].ProductName)
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }
