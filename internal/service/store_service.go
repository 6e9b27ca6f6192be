package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
)

// StoreService manages the single store profile attached to an account.
type StoreService interface {
	// Get returns nil without error when no profile has been saved yet.
	Get(ctx context.Context, userID uint) (*dto.StoreResponse, error)
	Save(ctx context.Context, userID uint, req dto.StoreRequest) error
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) Get(ctx context.Context, userID uint) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.StoreResponse{
		StoreName:    store.StoreName,
		AddressLine1: store.AddressLine1,
		Country:      store.Country,
		PostalCode:   store.PostalCode,
	}, nil
}

func (s *storeService) Save(ctx context.Context, userID uint, req dto.StoreRequest) error {
	return s.repo.Upsert(ctx, &model.Store{
		UserID:       userID,
		StoreName:    req.StoreName,
		AddressLine1: req.AddressLine1,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
	})
}
