// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package termsize

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"polyui.org/layout"
)

func get(fd uintptr) (layout.Size, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return layout.Size{}, errors.Wrapf(ErrNotTerminal, "fd %d: %v", fd, err)
	}
	return layout.Pt(uint32(ws.Col), uint32(ws.Row)), nil
}
