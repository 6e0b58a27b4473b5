package items

import (
	"context"

	"github.com/packline/inventory-api/pkg/db/models"
	"gorm.io/gorm"
)

// ListFilter carries the query knobs for the list endpoint.
type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

// Repository wires item persistence helpers to a GORM connection.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts the item; the database assigns the id.
func (r *Repository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID loads an item by primary key. Callers translate
// gorm.ErrRecordNotFound into the domain not-found error.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items ordered by ascending id, optionally restricted to names
// containing the filter query as a substring.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})
	if filter.Query != "" {
		query = query.Where("name LIKE ?", "%"+filter.Query+"%")
	}

	var items []models.Item
	if err := query.
		Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save persists every column of an already-loaded item.
func (r *Repository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item row permanently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
