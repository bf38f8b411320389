package repositories

import (
	"github.com/KirkDiggler/nightcaste/internal/errors"
)

// NewRecordNotFoundError reports a missing record of the given kind
func NewRecordNotFoundError(kind, id string) error {
	return errors.NotFoundf("%s not found: %s", kind, id).
		WithMeta("record", kind).
		WithMeta("id", id)
}
