// SPDX-License-Identifier: Unlicense OR MIT

// Package termsize reports the size of a terminal in cells.
package termsize

import (
	"github.com/pkg/errors"

	"polyui.org/layout"
)

// ErrNotTerminal is returned for file descriptors that are not
// terminals.
var ErrNotTerminal = errors.New("termsize: not a terminal")

// Fallback is the size assumed when no terminal size is known.
var Fallback = layout.Pt(80, 24)

// Get returns the size of the terminal at fd.
func Get(fd uintptr) (layout.Size, error) {
	return get(fd)
}

// OrFallback returns the size of the terminal at fd, or Fallback.
func OrFallback(fd uintptr) layout.Size {
	sz, err := get(fd)
	if err != nil || sz.W == 0 || sz.H == 0 {
		return Fallback
	}
	return sz
}
