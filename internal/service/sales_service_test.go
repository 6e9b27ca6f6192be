package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSVHeader = "CustomerID,Customer Age,Gender,Products,MRP,Discount Percentage,Category,Location,CustomerType,Advertisement,Returned,Date,Total,Order Type,Quantity,Discount Price,Month\n"

// salesRow builds one CSV line selling qty units of product.
func salesRow(product string, qty string) string {
	return "C1,30,Male," + product + ",100,0,Soap,City,Member,None,0,2024-05-01,100,Standard," + qty + ",0,May\n"
}

func newSalesImport(uow *memUnitOfWork) SalesService {
	return NewSalesService(nil, uow, nil)
}

func TestSalesImport_Success(t *testing.T) {
	uow := newMemUnitOfWork()
	soap := uow.seedStock(1, "Soap", 10)
	towel := uow.seedStock(1, "Towel", 4)

	svc := newSalesImport(uow)
	n, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "3")+salesRow("Towel", "4")))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, 7, uow.quantity(soap))
	assert.Equal(t, 0, uow.quantity(towel)) // exact depletion is allowed
	require.Len(t, uow.sales, 2)
	assert.Equal(t, uint(1), uow.sales[0].UserID)
	assert.Equal(t, "Soap", uow.sales[0].ProductName)
	assert.Equal(t, "Towel", uow.sales[1].ProductName)
}

func TestSalesImport_NoInventory(t *testing.T) {
	uow := newMemUnitOfWork()
	svc := newSalesImport(uow)

	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "1")))
	assert.ErrorIs(t, err, ErrNoInventory)
	assert.Empty(t, uow.sales)
}

func TestSalesImport_InventoryOfOtherUserDoesNotCount(t *testing.T) {
	uow := newMemUnitOfWork()
	uow.seedStock(2, "Soap", 10) // someone else's inventory

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "1")))
	assert.ErrorIs(t, err, ErrNoInventory)
}

func TestSalesImport_EmptyFile(t *testing.T) {
	uow := newMemUnitOfWork()
	uow.seedStock(1, "Soap", 10)

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1, strings.NewReader(salesCSVHeader))
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestSalesImport_ProductNotFoundRollsBackEverything(t *testing.T) {
	uow := newMemUnitOfWork()
	soap := uow.seedStock(1, "Soap", 10)

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "3")+salesRow("Ghost", "1")))

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Ghost", notFound.Product)

	// The Soap decrement and both sales rows are rolled back
	assert.Equal(t, 10, uow.quantity(soap))
	assert.Empty(t, uow.sales)
}

func TestSalesImport_InsufficientStockRollsBackEverything(t *testing.T) {
	uow := newMemUnitOfWork()
	soap := uow.seedStock(1, "Soap", 10)
	towel := uow.seedStock(1, "Towel", 2)

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "5")+salesRow("Towel", "3")))

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Towel", insufficient.Product)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Requested)

	assert.Equal(t, 10, uow.quantity(soap))
	assert.Equal(t, 2, uow.quantity(towel))
	assert.Empty(t, uow.sales)
}

func TestSalesImport_SameProductAccumulatesWithinBatch(t *testing.T) {
	uow := newMemUnitOfWork()
	soap := uow.seedStock(1, "Soap", 5)

	svc := newSalesImport(uow)

	// 3 + 2 = 5: each record sees the earlier decrement, total fits exactly.
	n, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "3")+salesRow("Soap", "2")))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, uow.quantity(soap))

	// One more unit would go negative on the second record.
	uow2 := newMemUnitOfWork()
	uow2.seedStock(1, "Soap", 5)
	svc2 := newSalesImport(uow2)
	_, err = svc2.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "3")+salesRow("Soap", "3")))
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
}

func TestSalesImport_OrderDecidesWhichRecordFails(t *testing.T) {
	uow := newMemUnitOfWork()
	uow.seedStock(1, "Soap", 4)

	// 4-then-1 fails on the second record with 0 available; 1-then-4 fails
	// with 3 available. Input order is observable in the error.
	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "4")+salesRow("Soap", "1")))
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)

	uow2 := newMemUnitOfWork()
	uow2.seedStock(1, "Soap", 4)
	svc2 := newSalesImport(uow2)
	_, err = svc2.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "1")+salesRow("Soap", "4")))
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available)
}

func TestSalesImport_ConservationAcrossCommit(t *testing.T) {
	uow := newMemUnitOfWork()
	uow.seedStock(1, "Soap", 10)
	uow.seedStock(1, "Towel", 10)
	before := uow.totalStockQty(1)

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "2")+salesRow("Towel", "3")+salesRow("Soap", "1")))
	require.NoError(t, err)

	sold := 0
	for _, rec := range uow.sales {
		sold += rec.Quantity
	}
	assert.Equal(t, before, uow.totalStockQty(1)+sold)
}

func TestSalesImport_ZeroQuantityRecordTouchesNothing(t *testing.T) {
	// Unparseable quantity normalizes to 0; the record still requires the
	// product to exist, but the stock level stays put.
	uow := newMemUnitOfWork()
	soap := uow.seedStock(1, "Soap", 10)

	svc := newSalesImport(uow)
	n, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "bogus")))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 10, uow.quantity(soap))
	require.Len(t, uow.sales, 1)
	assert.Equal(t, 0, uow.sales[0].Quantity)
}

func TestSalesImport_MalformedFileNeverReachesStore(t *testing.T) {
	uow := newMemUnitOfWork()
	uow.seedStock(1, "Soap", 10)

	svc := newSalesImport(uow)
	_, err := svc.ImportCSV(context.Background(), 1,
		strings.NewReader(salesCSVHeader+salesRow("Soap", "1")+`"broken`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoInventory))
	assert.Empty(t, uow.sales)
	assert.Equal(t, 10, uow.totalStockQty(1))
}
