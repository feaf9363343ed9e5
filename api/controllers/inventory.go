package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/inventory-backend/api/responses"
	"github.com/angelmondragon/inventory-backend/api/validators"
	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
)

// itemRequest is the create/update payload. Every field is a pointer so an
// explicit zero survives the required check while an absent key fails it.
type itemRequest struct {
	Name         *string `json:"name" validate:"required"`
	Condition    *string `json:"condition" validate:"required"`
	Quantity     *int    `json:"quantity" validate:"required"`
	RestockLevel *int    `json:"restock_level" validate:"required"`
}

func (req itemRequest) toWriteInput() inventory.WriteInput {
	return inventory.WriteInput{
		Name:         *req.Name,
		Condition:    enums.Condition(*req.Condition),
		Quantity:     *req.Quantity,
		RestockLevel: *req.RestockLevel,
	}
}

// CreateInventoryItem handles POST /inventory.
func CreateInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := validators.RequireJSONContentType(r); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req itemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Create(ctx, req.toWriteInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(ctx, item.ID), "inventory.created")
		}

		w.Header().Set("Location", fmt.Sprintf("/inventory/%d", item.ID))
		responses.WriteJSON(w, http.StatusCreated, item)
	}
}

// GetInventoryItem handles GET /inventory/{inventoryID}.
func GetInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := inventoryID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, item)
	}
}

// UpdateInventoryItem handles PUT /inventory/{inventoryID}. The payload fully
// replaces name, condition, quantity, and restock_level.
func UpdateInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := validators.RequireJSONContentType(r); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := inventoryID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req itemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Update(ctx, id, req.toWriteInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(ctx, item.ID), "inventory.updated")
		}

		responses.WriteJSON(w, http.StatusOK, item)
	}
}

// DeleteInventoryItem handles DELETE /inventory/{inventoryID}. Deletes are
// idempotent so an absent id still answers 204.
func DeleteInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := inventoryID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(ctx, id), "inventory.deleted")
		}

		responses.WriteNoContent(w)
	}
}

// ListInventoryItems handles GET /inventory with optional condition, restock,
// quantity, and name query parameters.
func ListInventoryItems(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := inventory.ParseFilter(r.URL.Query())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.List(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, items)
	}
}

// RestockInventoryItem handles PUT /inventory/{inventoryID}/restock.
func RestockInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := inventoryID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Restock(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(ctx, item.ID), "inventory.restocked")
		}

		responses.WriteJSON(w, http.StatusOK, item)
	}
}

// inventoryID pulls the numeric id out of the route. The route pattern
// constrains it to digits, so a parse failure here means a malformed request.
func inventoryID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "inventoryID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Invalid inventory id: %s", raw))
	}
	return id, nil
}
