package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/inventory-backend/internal/inventory"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
)

// stubService records the last call and returns canned results.
type stubService struct {
	item      *inventory.ItemDTO
	items     []inventory.ItemDTO
	err       error
	lastID    int
	lastInput inventory.WriteInput
}

func (s *stubService) Create(_ context.Context, input inventory.WriteInput) (*inventory.ItemDTO, error) {
	s.lastInput = input
	return s.item, s.err
}

func (s *stubService) Get(_ context.Context, id int) (*inventory.ItemDTO, error) {
	s.lastID = id
	return s.item, s.err
}

func (s *stubService) Update(_ context.Context, id int, input inventory.WriteInput) (*inventory.ItemDTO, error) {
	s.lastID = id
	s.lastInput = input
	return s.item, s.err
}

func (s *stubService) Delete(_ context.Context, id int) error {
	s.lastID = id
	return s.err
}

func (s *stubService) List(_ context.Context, _ inventory.Filter) ([]inventory.ItemDTO, error) {
	return s.items, s.err
}

func (s *stubService) Restock(_ context.Context, id int) (*inventory.ItemDTO, error) {
	s.lastID = id
	return s.item, s.err
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateSetsLocationHeader(t *testing.T) {
	svc := &stubService{item: &inventory.ItemDTO{ID: 42, Name: "widget", Condition: "NEW"}}
	handler := CreateInventoryItem(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/inventory",
		strings.NewReader(`{"name":"widget","condition":"NEW","quantity":1,"restock_level":0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/inventory/42", rec.Header().Get("Location"))
	assert.Equal(t, "widget", svc.lastInput.Name)
	assert.Equal(t, 1, svc.lastInput.Quantity)
}

func TestCreateGuardsContentTypeBeforeDecode(t *testing.T) {
	svc := &stubService{}
	handler := CreateInventoryItem(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/inventory",
		strings.NewReader(`{"name":"widget","condition":"NEW","quantity":1,"restock_level":0}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content-Type must be application/json")
	assert.Empty(t, svc.lastInput.Name)
}

func TestGetPassesParsedID(t *testing.T) {
	svc := &stubService{item: &inventory.ItemDTO{ID: 7, Name: "thing", Condition: "USED"}}
	handler := GetInventoryItem(svc, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/inventory/7", nil), "inventoryID", "7")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, svc.lastID)
	assert.Contains(t, rec.Body.String(), `"name":"thing"`)
}

func TestServiceErrorsPropagate(t *testing.T) {
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Inventory with id '7' was not found.")}
	handler := RestockInventoryItem(svc, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/inventory/7/restock", nil), "inventoryID", "7")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "was not found")
}

func TestDeleteRespondsNoContent(t *testing.T) {
	svc := &stubService{}
	handler := DeleteInventoryItem(svc, nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/inventory/9", nil), "inventoryID", "9")
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 9, svc.lastID)
	assert.Empty(t, rec.Body.String())
}

func TestListRejectsMalformedFilter(t *testing.T) {
	svc := &stubService{}
	handler := ListInventoryItems(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory?condition=damaged", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid condition in query: damaged")
}

func TestListReturnsEmptyArray(t *testing.T) {
	svc := &stubService{items: []inventory.ItemDTO{}}
	handler := ListInventoryItems(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
