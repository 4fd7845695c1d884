// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/go-logr/logr"
)

// Option configures a Grid, Linear or Canvas.
type Option func(o *options)

type options struct {
	log logr.Logger
}

// WithLogger makes a layout log its solves to l at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func newOptions(opts []Option) options {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
