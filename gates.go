// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim

import (
	"github.com/pkg/errors"
)

// gate is an N-input boolean reduction over evaluated inputs.
type gate struct {
	name string
	ins  []Element
	f    func(in []bool) bool
}

func (g *gate) Name() string { return g.name }

func (g *gate) Eval(p *Pass) (bool, error) {
	in := make([]bool, len(g.ins))
	for i, e := range g.ins {
		v, err := p.Eval(e)
		if err != nil {
			return false, errors.Wrap(err, g.name)
		}
		in[i] = v
	}
	return g.f(in), nil
}

func newGate(name string, ins []Element, f func(in []bool) bool) (Element, error) {
	if err := checkInputs(name, 1, ins); err != nil {
		return nil, err
	}
	return &gate{name: name, ins: ins, f: f}, nil
}

// Not returns an inverter over a single input.
//
//	Function: out = !in
func Not(in Element) (Element, error) {
	return newGate("NOT", []Element{in}, func(in []bool) bool { return !in[0] })
}

// And returns an N-input AND gate, N >= 1.
//
//	Function: out = in[0] && in[1] && ... && in[n-1]
func And(ins ...Element) (Element, error) {
	return newGate("AND", ins, func(in []bool) bool {
		for _, v := range in {
			if !v {
				return false
			}
		}
		return true
	})
}

// Or returns an N-input OR gate, N >= 1.
//
//	Function: out = in[0] || in[1] || ... || in[n-1]
func Or(ins ...Element) (Element, error) {
	return newGate("OR", ins, func(in []bool) bool {
		for _, v := range in {
			if v {
				return true
			}
		}
		return false
	})
}

// Xor returns an N-input XOR gate, N >= 1. For N > 2 the semantics are
// one-hot: the output is true iff exactly one input is true, not the
// pairwise parity of the inputs.
//
//	Function: out = (number of true inputs) == 1
func Xor(ins ...Element) (Element, error) {
	return newGate("XOR", ins, func(in []bool) bool {
		n := 0
		for _, v := range in {
			if v {
				n++
			}
		}
		return n == 1
	})
}

// Nand returns an N-input NAND gate, N >= 1, composed from an AND gate and
// an inverter over the same inputs rather than built as its own reduction.
//
//	Function: out = !(in[0] && in[1] && ... && in[n-1])
func Nand(ins ...Element) (Element, error) {
	a, err := And(ins...)
	if err != nil {
		return nil, errors.Wrap(err, "NAND")
	}
	return Not(a)
}
