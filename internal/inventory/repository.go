package inventory

import (
	"context"
	"time"

	"github.com/angelmondragon/inventory-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wires inventory persistence to a GORM connection.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// Create inserts a new inventory row. The id is assigned by the store.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads a single inventory row.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save writes back every column of an existing row.
func (r *Repository) Save(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteByID removes a row when present. Deleting an absent id is not an error.
func (r *Repository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{}).Error
}

// List returns the rows matching the single active filter, ordered by id.
func (r *Repository) List(ctx context.Context, filter Filter) ([]models.InventoryItem, error) {
	q := r.db.WithContext(ctx).Order("id ASC")

	switch filter.kind {
	case filterCondition:
		q = q.Where("condition = ?", filter.condition)
	case filterRestock:
		if filter.restock {
			q = q.Where("quantity <= restock_level")
		} else {
			q = q.Where("quantity > restock_level")
		}
	case filterQuantity:
		q = q.Where("quantity = ?", filter.quantity)
	case filterName:
		q = q.Where("name = ?", filter.name)
	}

	var rows []models.InventoryItem
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CompareAndRestock atomically tops up quantity to restock_level + 1 when the
// row is still restock-eligible. Returns the number of rows written so the
// caller can detect a lost race against a competing mutation.
func (r *Repository) CompareAndRestock(ctx context.Context, id int, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ? AND quantity <= restock_level", id).
		Updates(map[string]any{
			"quantity":   gorm.Expr("restock_level + 1"),
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}
