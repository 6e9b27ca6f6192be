package service

import (
	"context"
	"errors"
	"io"

	"github.com/bsm/redislock"
	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/ingest"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// SalesService owns the sales side of the CSV pipeline: the reconciliation
// transaction (insert sales rows + decrement stock, all-or-nothing) and the
// recent-sales listing.
type SalesService interface {
	// ImportCSV runs the reconciliation transaction for one uploaded file and
	// returns the number of records imported. Any failure rolls back every
	// insert and every decrement.
	ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error)
	ListRecent(ctx context.Context, userID uint) ([]dto.SaleResponse, error)
}

type salesService struct {
	repo   repository.SalesRepository
	uow    repository.UnitOfWork
	locker *redislock.Client
}

func NewSalesService(repo repository.SalesRepository, uow repository.UnitOfWork, locker *redislock.Client) SalesService {
	return &salesService{repo: repo, uow: uow, locker: locker}
}

// ImportCSV implements the reconciliation transaction:
//
//  1. the user must already own at least one stock item;
//  2. every normalized record is bulk-inserted as a sales row, in input order;
//  3. per record, in input order, the matching stock row is locked and
//     decremented — a missing product or a decrement below zero aborts the
//     whole batch;
//  4. commit, or roll back everything.
//
// Records for the same product accumulate within the batch: each lookup sees
// the decrements applied earlier in the same transaction, so ordering decides
// which record trips InsufficientStock first.
func (s *salesService) ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error) {
	stream, err := ingest.SalesSchema.Stream(r)
	if err != nil {
		return 0, err
	}
	recs, err := stream.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, ErrEmptyUpload
	}

	release, err := lockUser(ctx, s.locker, userID)
	if err != nil {
		return 0, err
	}
	defer release()

	txErr := s.uow.Do(ctx, func(tx repository.Tx) error {
		n, err := tx.CountStock(userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoInventory
		}

		for i := range recs {
			recs[i].UserID = userID
		}
		if err := tx.CreateSaleRecords(recs); err != nil {
			return err
		}

		for _, rec := range recs {
			item, err := tx.StockForUpdate(userID, rec.ProductName)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{Product: rec.ProductName}
			}
			if err != nil {
				return err
			}
			newQty := item.Quantity - rec.Quantity
			if newQty < 0 {
				return &InsufficientStockError{
					Product:   rec.ProductName,
					Available: item.Quantity,
					Requested: rec.Quantity,
				}
			}
			if err := tx.UpdateStockQuantity(item.ID, newQty); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return len(recs), nil
}

func (s *salesService) ListRecent(ctx context.Context, userID uint) ([]dto.SaleResponse, error) {
	recs, err := s.repo.ListRecent(ctx, userID, 100)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.SaleResponse{
			CustomerID:  rec.CustomerID,
			ProductName: rec.ProductName,
			Quantity:    rec.Quantity,
			Total:       rec.Total,
			Date:        rec.Date.Format("2006-01-02"),
			OrderType:   rec.OrderType,
			Location:    rec.Location,
		})
	}
	return out, nil
}
