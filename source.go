// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim

// constant is a fixed-output source with no inputs.
type constant bool

func (c constant) Name() string {
	if c {
		return "VCC"
	}
	return "GND"
}

func (c constant) Eval(_ *Pass) (bool, error) {
	return bool(c), nil
}

// Vcc and Ground are the two constant sources. They exist so that every
// circuit can be wired uniformly through the Element contract instead of
// special-casing literal booleans. Both are immutable and freely shared:
// the same Vcc may feed any number of gates across any number of circuits.
var (
	Vcc    Element = constant(true)
	Ground Element = constant(false)
)

type input struct {
	f func() bool
}

func (i *input) Name() string { return "Input" }

func (i *input) Eval(_ *Pass) (bool, error) {
	return i.f(), nil
}

// Input creates a function based source element. f is called on every
// evaluation, so the value it returns may change between passes.
//
//	Function: out = f()
func Input(f func() bool) (Element, error) {
	if f == nil {
		return nil, &ConstructionError{Element: "Input", Reason: "nil function"}
	}
	return &input{f: f}, nil
}

type probe struct {
	in Element
	f  func(bool)
}

func (p *probe) Name() string { return "Probe" }

func (p *probe) Eval(ps *Pass) (bool, error) {
	v, err := ps.Eval(p.in)
	if err != nil {
		return false, err
	}
	p.f(v)
	return v, nil
}

// Probe creates a pass-through element that reports the signal it carries.
// f is called with the input's value on every evaluation.
//
//	Function: out = in, f(in)
func Probe(in Element, f func(bool)) (Element, error) {
	if in == nil {
		return nil, &ConstructionError{Element: "Probe", Reason: "input is nil"}
	}
	if f == nil {
		return nil, &ConstructionError{Element: "Probe", Reason: "nil function"}
	}
	return &probe{in: in, f: f}, nil
}
