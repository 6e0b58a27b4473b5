package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/packline/inventory-api/pkg/db"
	"github.com/packline/inventory-api/pkg/db/models"
	pkgerrors "github.com/packline/inventory-api/pkg/errors"
	"gorm.io/gorm"
)

// notFoundMessage matches the public contract for missing items.
const notFoundMessage = "Item not found"

// Service exposes the item CRUD operations.
type Service interface {
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	List(ctx context.Context, input ListItemsInput) ([]ItemDTO, error)
	Get(ctx context.Context, itemID int64) (*ItemDTO, error)
	Update(ctx context.Context, itemID int64, input UpdateItemInput) (*ItemDTO, error)
	Delete(ctx context.Context, itemID int64) error
}

// CreateItemInput holds the validated payload to create an item. Identity and
// timestamps are never taken from the client.
type CreateItemInput struct {
	Name  string
	SKU   string
	Qty   int
	Price float64
}

// UpdateItemInput carries the full replacement payload for an item. Every
// field is applied; this is PUT semantics, not a partial patch.
type UpdateItemInput struct {
	Name  string
	SKU   string
	Qty   int
	Price float64
}

// ListItemsInput captures pagination and the optional name filter.
type ListItemsInput struct {
	Query  string
	Limit  int
	Offset int
}

// service implements the item service.
type service struct {
	repo     *Repository
	dbClient *db.Client
	now      func() time.Time
}

// NewService constructs an item service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		now:      time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	now := s.now().UTC()
	item := models.Item{
		Name:      input.Name,
		SKU:       input.SKU,
		Qty:       input.Qty,
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *models.Item
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, &item); err != nil {
			return err
		}
		// Reload so storage-assigned defaults end up in the response.
		reloaded, err := txRepo.FindByID(ctx, item.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating item")
	}

	dto := toItemDTO(*created)
	return &dto, nil
}

func (s *service) List(ctx context.Context, input ListItemsInput) ([]ItemDTO, error) {
	items, err := s.repo.List(ctx, ListFilter{
		Query:  input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing items")
	}
	return toItemDTOs(items), nil
}

func (s *service) Get(ctx context.Context, itemID int64) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asLookupError(err)
	}
	dto := toItemDTO(*item)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, itemID int64, input UpdateItemInput) (*ItemDTO, error) {
	var updated *models.Item
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}

		item.Name = input.Name
		item.SKU = input.SKU
		item.Qty = input.Qty
		item.Price = input.Price
		item.UpdatedAt = s.now().UTC()

		if err := txRepo.Save(ctx, item); err != nil {
			return err
		}

		reloaded, err := txRepo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, asLookupError(err)
	}

	dto := toItemDTO(*updated)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, itemID int64) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, itemID); err != nil {
			return err
		}
		return txRepo.Delete(ctx, itemID)
	})
	if err != nil {
		return asLookupError(err)
	}
	return nil
}

func asLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "item operation failed")
}
