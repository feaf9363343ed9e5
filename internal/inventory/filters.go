package inventory

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/angelmondragon/inventory-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-backend/pkg/errors"
)

type filterKind int

const (
	filterNone filterKind = iota
	filterCondition
	filterRestock
	filterQuantity
	filterName
)

// Filter selects at most one predicate for the list operation. When several
// query parameters are supplied the fixed priority is
// condition > restock > quantity > name; exactly one predicate executes.
type Filter struct {
	kind      filterKind
	condition enums.Condition
	restock   bool
	quantity  int
	name      string
}

// ParseFilter resolves raw query parameters into a single active filter.
// Malformed values fail with a validation error rather than an empty result.
func ParseFilter(query url.Values) (Filter, error) {
	if raw := query.Get("condition"); raw != "" {
		condition, err := enums.ParseCondition(raw)
		if err != nil {
			return Filter{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Invalid condition in query: %s", raw))
		}
		return Filter{kind: filterCondition, condition: condition}, nil
	}

	if raw := query.Get("restock"); raw != "" {
		switch {
		case strings.EqualFold(raw, "true"):
			return Filter{kind: filterRestock, restock: true}, nil
		case strings.EqualFold(raw, "false"):
			return Filter{kind: filterRestock, restock: false}, nil
		default:
			return Filter{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Invalid restock value in query: %s", raw))
		}
	}

	if query.Has("quantity") {
		raw := query.Get("quantity")
		if !isDigits(raw) {
			return Filter{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Invalid quantity in query: %s", raw))
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Invalid quantity in query: %s", raw))
		}
		return Filter{kind: filterQuantity, quantity: quantity}, nil
	}

	if raw := query.Get("name"); raw != "" {
		return Filter{kind: filterName, name: raw}, nil
	}

	return Filter{kind: filterNone}, nil
}

// isDigits reports whether s is a non-empty run of decimal digits. Signs,
// decimal points, and whitespace all disqualify the value.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
