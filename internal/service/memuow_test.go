package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// memUnitOfWork is an in-memory UnitOfWork with real rollback semantics: Do
// runs fn against a deep copy of the store and only commits the copy when fn
// returns nil. Tests assert atomicity by inspecting the store after a failed
// transaction.
type memUnitOfWork struct {
	stock  map[uint]model.StockItem // by item ID
	sales  []model.SaleRecord
	nextID uint
}

func newMemUnitOfWork() *memUnitOfWork {
	return &memUnitOfWork{stock: make(map[uint]model.StockItem)}
}

var _ repository.UnitOfWork = (*memUnitOfWork)(nil)

func (u *memUnitOfWork) Do(_ context.Context, fn func(repository.Tx) error) error {
	tx := &memTx{
		stock:  make(map[uint]model.StockItem, len(u.stock)),
		sales:  append([]model.SaleRecord(nil), u.sales...),
		nextID: u.nextID,
	}
	for id, item := range u.stock {
		tx.stock[id] = item
	}

	if err := fn(tx); err != nil {
		return err // copy discarded — nothing committed
	}

	u.stock = tx.stock
	u.sales = tx.sales
	u.nextID = tx.nextID
	return nil
}

// seedStock inserts an item outside any transaction.
func (u *memUnitOfWork) seedStock(userID uint, name string, qty int) uint {
	u.nextID++
	u.stock[u.nextID] = model.StockItem{
		ID:          u.nextID,
		UserID:      userID,
		ProductName: name,
		Quantity:    qty,
		Category:    "Unknown",
		SubCategory: "Unknown",
	}
	return u.nextID
}

func (u *memUnitOfWork) quantity(id uint) int { return u.stock[id].Quantity }

func (u *memUnitOfWork) findStock(userID uint, name string) (model.StockItem, bool) {
	for _, item := range u.stock {
		if item.UserID == userID && item.ProductName == name {
			return item, true
		}
	}
	return model.StockItem{}, false
}

func (u *memUnitOfWork) totalStockQty(userID uint) int {
	sum := 0
	for _, item := range u.stock {
		if item.UserID == userID {
			sum += item.Quantity
		}
	}
	return sum
}

type memTx struct {
	stock  map[uint]model.StockItem
	sales  []model.SaleRecord
	nextID uint
}

var _ repository.Tx = (*memTx)(nil)

func (t *memTx) CountStock(userID uint) (int64, error) {
	var n int64
	for _, item := range t.stock {
		if item.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (t *memTx) StockForUpdate(userID uint, productName string) (*model.StockItem, error) {
	for _, item := range t.stock {
		if item.UserID == userID && item.ProductName == productName {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (t *memTx) UpdateStockQuantity(itemID uint, quantity int) error {
	item, ok := t.stock[itemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	t.stock[itemID] = item
	return nil
}

func (t *memTx) CreateStockItem(item *model.StockItem) error {
	t.nextID++
	item.ID = t.nextID
	t.stock[item.ID] = *item
	return nil
}

func (t *memTx) CreateSaleRecords(recs []model.SaleRecord) error {
	for i := range recs {
		t.nextID++
		recs[i].ID = t.nextID
	}
	t.sales = append(t.sales, recs...)
	return nil
}
