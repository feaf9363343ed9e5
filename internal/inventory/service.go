package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/inventory-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"gorm.io/gorm"
)

// MaxNameLength mirrors the name column width.
const MaxNameLength = 63

// Service exposes the inventory resource operations.
type Service interface {
	Create(ctx context.Context, input WriteInput) (*ItemDTO, error)
	Get(ctx context.Context, id int) (*ItemDTO, error)
	Update(ctx context.Context, id int, input WriteInput) (*ItemDTO, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter Filter) ([]ItemDTO, error)
	Restock(ctx context.Context, id int) (*ItemDTO, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Create validates the payload and inserts a new item. The store assigns the
// id; created_at and updated_at are set to the same instant.
func (s *service) Create(ctx context.Context, input WriteInput) (*ItemDTO, error) {
	if err := validateWriteInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	item := &models.InventoryItem{
		Name:         input.Name,
		Condition:    input.Condition,
		Quantity:     input.Quantity,
		RestockLevel: input.RestockLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return toItemDTO(created), nil
}

// Get returns a single item by id.
func (s *service) Get(ctx context.Context, id int) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err, id)
	}
	return toItemDTO(item), nil
}

// Update replaces name, condition, quantity, and restock_level. The id and
// created_at are preserved; updated_at is refreshed. The lookup runs before
// payload validation, so a missing id answers not-found even when the
// replacement payload is itself invalid.
func (s *service) Update(ctx context.Context, id int, input WriteInput) (*ItemDTO, error) {
	var updated *models.InventoryItem
	err := s.repo.Transaction(ctx, func(txRepo *Repository) error {
		item, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return mapLookupError(err, id)
		}

		if err := validateWriteInput(input); err != nil {
			return err
		}

		item.Name = input.Name
		item.Condition = input.Condition
		item.Quantity = input.Quantity
		item.RestockLevel = input.RestockLevel
		item.UpdatedAt = s.now()

		updated, err = txRepo.Save(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toItemDTO(updated), nil
}

// Delete removes an item. Deleting an absent id still succeeds.
func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteByID(ctx, id)
}

// List returns every item matching the single active filter.
func (s *service) List(ctx context.Context, filter Filter) ([]ItemDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toItemDTOs(rows), nil
}

// Restock tops up an eligible item to restock_level + 1. An item whose
// quantity is already above its restock level conflicts and is left untouched.
// The check-and-set runs inside one transaction so competing restocks cannot
// both commit.
func (s *service) Restock(ctx context.Context, id int) (*ItemDTO, error) {
	var restocked *models.InventoryItem
	err := s.repo.Transaction(ctx, func(txRepo *Repository) error {
		item, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return mapLookupError(err, id)
		}

		if item.Quantity > item.RestockLevel {
			return conflictError(id)
		}

		rows, err := txRepo.CompareAndRestock(ctx, id, s.now())
		if err != nil {
			return err
		}
		if rows == 0 {
			// A competing update moved the quantity above the threshold
			// between the read and the conditional write.
			return conflictError(id)
		}

		restocked, err = txRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toItemDTO(restocked), nil
}

func validateWriteInput(input WriteInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if len(input.Name) > MaxNameLength {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("name must be at most %d characters", MaxNameLength))
	}
	if !input.Condition.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("invalid condition %q", string(input.Condition)))
	}
	return nil
}

func mapLookupError(err error, id int) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError(id)
	}
	return err
}

func notFoundError(id int) error {
	return pkgerrors.New(pkgerrors.CodeNotFound,
		fmt.Sprintf("Inventory with id '%d' was not found.", id))
}

func conflictError(id int) error {
	return pkgerrors.New(pkgerrors.CodeConflict,
		fmt.Sprintf("Inventory with id '%d' is already above the restock level", id))
}
