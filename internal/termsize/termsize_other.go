// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix

package termsize

import (
	"github.com/pkg/errors"

	"polyui.org/layout"
)

func get(fd uintptr) (layout.Size, error) {
	return layout.Size{}, errors.Wrapf(ErrNotTerminal, "fd %d", fd)
}
