package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name     string `json:"name" validate:"required,max=63"`
	Quantity *int   `json:"quantity" validate:"required"`
}

func newJSONRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestDecodeJSONBodyAcceptsIntegers(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"widget","quantity":100}`), &dest)
	require.NoError(t, err)
	require.NotNil(t, dest.Quantity)
	assert.Equal(t, 100, *dest.Quantity)
}

func TestDecodeJSONBodyAcceptsExplicitZero(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"widget","quantity":0}`), &dest)
	require.NoError(t, err)
	require.NotNil(t, dest.Quantity)
	assert.Zero(t, *dest.Quantity)
}

func TestDecodeJSONBodyRejectsNumericString(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"widget","quantity":"100"}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "quantity")
	assert.Contains(t, typed.Message(), "string")
}

func TestDecodeJSONBodyRejectsFloat(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"widget","quantity":10.5}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "quantity")
}

func TestDecodeJSONBodyRejectsBool(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"widget","quantity":true}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyNamesMissingFields(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `{}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "missing")
	assert.Contains(t, typed.Message(), "name")
	assert.Contains(t, typed.Message(), "quantity")
}

func TestDecodeJSONBodyNamesInvalidFields(t *testing.T) {
	var dest testPayload
	longName := strings.Repeat("x", 64)
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"`+longName+`","quantity":1}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "name")
	assert.Contains(t, typed.Message(), "must be at most 63")
}

func TestDecodeJSONBodyNamesMissingAndInvalidTogether(t *testing.T) {
	var dest testPayload
	longName := strings.Repeat("x", 64)
	err := DecodeJSONBody(newJSONRequest(t, `{"name":"`+longName+`"}`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Contains(t, typed.Message(), "missing quantity")
	assert.Contains(t, typed.Message(), "name must be at most 63")
}

func TestDecodeJSONBodyIgnoresUnknownKeys(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t,
		`{"name":"widget","quantity":1,"id":99,"created_at":"2020-01-01T00:00:00Z"}`), &dest)
	require.NoError(t, err)
}

func TestDecodeJSONBodyRejectsNonObjectBody(t *testing.T) {
	var dest testPayload
	err := DecodeJSONBody(newJSONRequest(t, `[1,2,3]`), &dest)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestRequireJSONContentType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/inventory", nil)
	err := RequireJSONContentType(r)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnsupportedMedia, typed.Code())
	assert.Equal(t, "Content-Type must be application/json", typed.Message())

	r.Header.Set("Content-Type", "text/plain")
	err = RequireJSONContentType(r)
	require.NotNil(t, pkgerrors.As(err))

	r.Header.Set("Content-Type", "application/json")
	assert.NoError(t, RequireJSONContentType(r))

	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.NoError(t, RequireJSONContentType(r))
}
