// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim

import (
	"github.com/pkg/errors"
)

// A Switch wraps a single input element with a persistent, externally
// togglable inversion flag. It is the only stateful element in the package
// and the only point where a driver injects change into an otherwise static
// circuit.
//
// Flip only records the new position; nothing is recomputed until the next
// evaluation pass reads the flag. Flipping a switch while an evaluation
// that reaches it is in flight is not supported.
type Switch struct {
	in      Element
	flipped bool
}

// NewSwitch returns a switch over in, initially not flipped.
func NewSwitch(in Element) (*Switch, error) {
	if in == nil {
		return nil, &ConstructionError{Element: "SWITCH", Reason: "input is nil"}
	}
	return &Switch{in: in}, nil
}

// Name implements the display name hook used by Name and trace logging.
func (s *Switch) Name() string { return "SWITCH" }

// Flip toggles the switch position.
func (s *Switch) Flip() { s.flipped = !s.flipped }

// Flipped reports the current switch position.
func (s *Switch) Flipped() bool { return s.flipped }

// Eval returns the input's value, inverted while the switch is flipped.
func (s *Switch) Eval(p *Pass) (bool, error) {
	v, err := p.Eval(s.in)
	if err != nil {
		return false, errors.Wrap(err, "SWITCH")
	}
	return v != s.flipped, nil
}
