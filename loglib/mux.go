// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package loglib

import (
	"github.com/pkg/errors"

	"github.com/db47h/logsim"
)

// Mux returns a 2-way multiplexer. It is built structurally from gates,
// not as a native conditional.
//
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(sel, a, b logsim.Element) (logsim.Element, error) {
	nsel, err := logsim.Not(sel)
	if err != nil {
		return nil, errors.Wrap(err, "mux")
	}
	lo, err := logsim.And(nsel, a)
	if err != nil {
		return nil, errors.Wrap(err, "mux")
	}
	hi, err := logsim.And(sel, b)
	if err != nil {
		return nil, errors.Wrap(err, "mux")
	}
	out, err := logsim.Or(lo, hi)
	if err != nil {
		return nil, errors.Wrap(err, "mux")
	}
	return out, nil
}

// Mux4 returns a 4-way multiplexer with two select lines, composed as a
// tree of three 2-way muxes. sel1 is the high select bit.
//
//	Function: out = [a, b, c, d][sel1*2 + sel0]
func Mux4(sel1, sel0, a, b, c, d logsim.Element) (logsim.Element, error) {
	ab, err := Mux(sel0, a, b)
	if err != nil {
		return nil, errors.Wrap(err, "mux4")
	}
	cd, err := Mux(sel0, c, d)
	if err != nil {
		return nil, errors.Wrap(err, "mux4")
	}
	out, err := Mux(sel1, ab, cd)
	if err != nil {
		return nil, errors.Wrap(err, "mux4")
	}
	return out, nil
}
