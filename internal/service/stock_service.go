package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/bsm/redislock"
	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/ingest"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// StockService builds inventory from stock CSV uploads and serves the
// inventory listing.
type StockService interface {
	// ImportCSV merges one uploaded stock file into the user's inventory:
	// existing products gain the row's quantity (other fields untouched), new
	// products are inserted as-is. One transaction per upload; any row-level
	// error rolls back the whole batch.
	ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error)
	List(ctx context.Context, userID uint) ([]dto.StockItemResponse, error)
}

type stockService struct {
	repo   repository.StockRepository
	uow    repository.UnitOfWork
	locker *redislock.Client
}

func NewStockService(repo repository.StockRepository, uow repository.UnitOfWork, locker *redislock.Client) StockService {
	return &stockService{repo: repo, uow: uow, locker: locker}
}

func (s *stockService) ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error) {
	stream, err := ingest.StockSchema.Stream(r)
	if err != nil {
		return 0, err
	}
	rows, err := stream.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrEmptyUpload
	}

	release, err := lockUser(ctx, s.locker, userID)
	if err != nil {
		return 0, err
	}
	defer release()

	txErr := s.uow.Do(ctx, func(tx repository.Tx) error {
		for i := range rows {
			row := rows[i]
			name := strings.TrimSpace(row.ProductName)
			if name == "" {
				return ErrEmptyProductName
			}

			existing, err := tx.StockForUpdate(userID, name)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				row.UserID = userID
				row.ProductName = name
				if err := tx.CreateStockItem(&row); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			// Additive merge: quantity grows, the stored pricing and
			// category fields stay as they were.
			if err := tx.UpdateStockQuantity(existing.ID, existing.Quantity+row.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return len(rows), nil
}

func (s *stockService) List(ctx context.Context, userID uint) ([]dto.StockItemResponse, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			MRP:         it.MRP,
			Price:       it.Price,
			Category:    it.Category,
			SubCategory: it.SubCategory,
		})
	}
	return out, nil
}
