// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package loglib provides a library of reusable composite circuits built on
// logsim elements: adders and multiplexers, plus int64 bus helpers.
//
// Composites wire primitive gates together at construction time and expose
// their outputs as regular elements; like every element, they are
// recomputed from their inputs on each evaluation.
package loglib

import (
	"strconv"

	"github.com/db47h/logsim"
)

// InputN creates a bus of function based inputs reading the bits of f().
// Element 0 of the returned bus carries the least significant bit.
//
//	Function: out[i] = f() >> i & 1
func InputN(bits int, f func() int64) ([]logsim.Element, error) {
	if bits < 1 || bits > 64 {
		return nil, &logsim.ConstructionError{
			Element: "Input" + strconv.Itoa(bits),
			Reason:  "bus size out of range",
		}
	}
	bus := make([]logsim.Element, bits)
	for i := range bus {
		bit := uint(i)
		in, err := logsim.Input(func() bool { return f()&(1<<bit) != 0 })
		if err != nil {
			return nil, err
		}
		bus[i] = in
	}
	return bus, nil
}

// Int64 packs a slice of signals into an int64. Signal 0 is the lsb.
func Int64(vs []bool) int64 {
	var out int64
	for bit, v := range vs {
		if v {
			out |= 1 << uint(bit)
		}
	}
	return out
}
