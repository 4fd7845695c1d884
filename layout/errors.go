// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned for unknown children and for
	// negative column, row or item indices.
	ErrOutOfRange = errors.New("layout: index out of range")
	// ErrInvalidConstraints is returned when the items of a Span
	// cannot cover the requested size without exceeding their
	// maximum sizes.
	ErrInvalidConstraints = errors.New("layout: invalid constraints")
	// ErrDuplicateAssignment is returned when a child is added
	// twice or a cell is already occupied.
	ErrDuplicateAssignment = errors.New("layout: duplicate assignment")
)
