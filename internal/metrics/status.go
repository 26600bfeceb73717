// Package metrics holds the Prometheus collectors of every component.
package metrics

import (
	"errors"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

const namespace = "passblock"

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
