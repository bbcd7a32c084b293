// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package loglib

import (
	"github.com/pkg/errors"

	"github.com/db47h/logsim"
)

// A HalfAdder adds two bits. Its outputs are plain elements and can be
// wired into larger circuits; Sum is the low bit of a+b, Carry the high
// bit.
type HalfAdder struct {
	Sum   logsim.Element
	Carry logsim.Element
}

// NewHalfAdder returns a half adder over inputs a and b.
//
//	Function: Sum   = a != b
//	          Carry = a && b
func NewHalfAdder(a, b logsim.Element) (*HalfAdder, error) {
	sum, err := logsim.Xor(a, b)
	if err != nil {
		return nil, errors.Wrap(err, "half adder")
	}
	carry, err := logsim.And(a, b)
	if err != nil {
		return nil, errors.Wrap(err, "half adder")
	}
	return &HalfAdder{Sum: sum, Carry: carry}, nil
}

// Evaluate resolves both outputs.
func (h *HalfAdder) Evaluate() (sum, carry bool, err error) {
	if sum, err = logsim.Evaluate(h.Sum); err != nil {
		return false, false, err
	}
	if carry, err = logsim.Evaluate(h.Carry); err != nil {
		return false, false, err
	}
	return sum, carry, nil
}

// A FullAdder adds two bits and a carry in. Like HalfAdder, its outputs
// are elements usable as inputs to other circuits.
type FullAdder struct {
	Sum   logsim.Element
	Carry logsim.Element
}

// NewFullAdder returns a full adder built from two chained half adders: one
// over a and b, one over cin and the first sum, with the carries ORed.
//
//	Function: Sum   = lsb(a + b + cin)
//	          Carry = msb(a + b + cin)
func NewFullAdder(cin, a, b logsim.Element) (*FullAdder, error) {
	h0, err := NewHalfAdder(a, b)
	if err != nil {
		return nil, errors.Wrap(err, "full adder")
	}
	h1, err := NewHalfAdder(cin, h0.Sum)
	if err != nil {
		return nil, errors.Wrap(err, "full adder")
	}
	carry, err := logsim.Or(h0.Carry, h1.Carry)
	if err != nil {
		return nil, errors.Wrap(err, "full adder")
	}
	return &FullAdder{Sum: h1.Sum, Carry: carry}, nil
}

// Evaluate resolves both outputs.
func (f *FullAdder) Evaluate() (sum, carry bool, err error) {
	if sum, err = logsim.Evaluate(f.Sum); err != nil {
		return false, false, err
	}
	if carry, err = logsim.Evaluate(f.Carry); err != nil {
		return false, false, err
	}
	return sum, carry, nil
}

// An Adder is an N-bit ripple carry adder over two input buses: a half
// adder on bit 0 and a chain of full adders above it. Sum[0] is the least
// significant bit; Carry is the carry out of the highest bit.
type Adder struct {
	Sum   []logsim.Element
	Carry logsim.Element
}

// NewAdder returns a ripple carry adder over buses a and b, which must have
// the same non-zero length.
func NewAdder(a, b []logsim.Element) (*Adder, error) {
	if len(a) != len(b) || len(a) == 0 {
		return nil, &logsim.ConstructionError{Element: "Adder", Reason: "input buses must have the same non-zero size"}
	}
	sum := make([]logsim.Element, len(a))
	h, err := NewHalfAdder(a[0], b[0])
	if err != nil {
		return nil, errors.Wrap(err, "adder")
	}
	sum[0] = h.Sum
	carry := h.Carry
	for i := 1; i < len(a); i++ {
		f, err := NewFullAdder(carry, a[i], b[i])
		if err != nil {
			return nil, errors.Wrap(err, "adder")
		}
		sum[i] = f.Sum
		carry = f.Carry
	}
	return &Adder{Sum: sum, Carry: carry}, nil
}

// Evaluate resolves the sum bus and the carry out.
func (a *Adder) Evaluate() (sum []bool, carry bool, err error) {
	sum = make([]bool, len(a.Sum))
	for i, e := range a.Sum {
		if sum[i], err = logsim.Evaluate(e); err != nil {
			return nil, false, err
		}
	}
	if carry, err = logsim.Evaluate(a.Carry); err != nil {
		return nil, false, err
	}
	return sum, carry, nil
}
