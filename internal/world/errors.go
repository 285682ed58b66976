package world

import "fmt"

// OutOfBoundsError is returned when a square lies outside the grid.
type OutOfBoundsError struct {
	Square        Square
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("square %s is outside the %dx%d grid", e.Square, e.Width, e.Height)
}

// OccupiedSquareError is returned when a move targets a square that already holds an entity.
type OccupiedSquareError struct {
	Square   Square
	Occupant string
}

func (e *OccupiedSquareError) Error() string {
	return fmt.Sprintf("square %s is occupied by %q", e.Square, e.Occupant)
}

// EntityNotFoundError is returned when an entity has no position on the grid.
// Once placed, an entity always has a position, so this indicates a corrupted
// session rather than a bad command.
type EntityNotFoundError struct {
	ID string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found on the grid", e.ID)
}

// ConfigurationError reports invalid setup: bad grid dimensions, wrong entity
// count or team split, duplicate names.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Configurationf builds a ConfigurationError from a format string.
func Configurationf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
