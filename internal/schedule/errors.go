// Package schedule defines the weekly grid, its time blocks and the activity painter.
package schedule

import (
	"errors"

	"github.com/javiermolinar/horario/internal/clock"
)

// Validation errors. All are recoverable; the grid is left untouched.
var (
	ErrMissingField = errors.New("name, days, start and end are required")
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrInvalidColor = errors.New("color must be in #RRGGBB format")
	ErrOutsideGrid  = errors.New("activity does not overlap any visible time block")
)

// Configuration and programming errors.
var (
	ErrInvalidConfiguration = errors.New("invalid grid configuration")
	ErrOutOfRange           = errors.New("cell outside grid shape")
	ErrUnknownDay           = errors.New("unknown day")
)

// Message returns the user-facing notification for a validation error.
// Unknown errors fall back to err.Error().
func Message(err error) string {
	var um interface{ UserMessage() string }
	switch {
	case err == nil:
		return ""
	case errors.As(err, &um):
		return um.UserMessage()
	case errors.Is(err, ErrMissingField):
		return "Complete todos los campos antes de agregar."
	case errors.Is(err, ErrInvalidRange):
		return "La hora final debe ser mayor que la de inicio."
	case errors.Is(err, ErrInvalidColor):
		return "El color debe tener el formato #RRGGBB."
	case errors.Is(err, ErrOutsideGrid):
		return "La actividad queda fuera de las horas visibles."
	case errors.Is(err, clock.ErrInvalidFormat):
		return "Formato inválido. Debe ser HH:MM."
	case errors.Is(err, ErrInvalidConfiguration):
		return "Configuración de tabla inválida."
	case errors.Is(err, ErrUnknownDay):
		return "Día desconocido."
	case errors.Is(err, ErrOutOfRange):
		return "La celda no existe en la tabla."
	default:
		return err.Error()
	}
}
