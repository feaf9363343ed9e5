package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// RequireJSONContentType rejects payload-bearing requests whose Content-Type
// is missing or not application/json. The check runs before any body read.
func RequireJSONContentType(r *http.Request) error {
	raw := r.Header.Get("Content-Type")
	if raw == "" {
		return pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "Content-Type must be application/json")
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil || mediaType != "application/json" {
		return pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "Content-Type must be application/json").
			WithDetails(map[string]any{"content_type": raw})
	}
	return nil
}

// DecodeJSONBody parses the request body into dest and runs struct
// validation. Unknown keys are ignored (clients may echo back server-owned
// fields such as id and timestamps), but type mismatches are hard failures:
// a quantity of "100" or 10.5 is rejected, never coerced.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return decodeError(err)
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func decodeError(err error) *pkgerrors.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Invalid type for %s [%s]: %s", typeErr.Type.String(), field, typeErr.Value)).
			WithDetails(map[string]any{"field": field, "got": typeErr.Value})
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").
		WithDetails(map[string]any{"error": err.Error()})
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		missing := []string{}
		invalid := []string{}
		for _, fieldErr := range errs {
			msg := validationMessage(fieldErr)
			details[fieldErr.Field()] = msg
			if fieldErr.Tag() == "required" {
				missing = append(missing, fieldErr.Field())
			} else {
				invalid = append(invalid, fieldErr.Field()+" "+msg)
			}
		}

		// The message itself names every offending field; details carry the
		// same information keyed per field.
		parts := []string{}
		if len(missing) > 0 {
			parts = append(parts, "missing "+strings.Join(missing, ", "))
		}
		parts = append(parts, invalid...)

		msg := "validation failed"
		if len(parts) > 0 {
			msg = "Invalid inventory item: " + strings.Join(parts, "; ")
		}
		return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
