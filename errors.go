// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim

import "strconv"

// A ConstructionError reports invalid wiring detected while building an
// element: a wrong number of inputs for the element kind, or a nil input.
type ConstructionError struct {
	Element string // name of the element being built
	Reason  string
}

func (e *ConstructionError) Error() string {
	return e.Element + ": " + e.Reason
}

// An EvaluationError reports a failed evaluation pass. With the elements
// provided by this package and its sub-packages the only cause is the
// recursion depth bound tripping on a wiring cycle closed by a
// caller-defined element; custom elements may fail for their own reasons.
type EvaluationError struct {
	Element string // name of the element where evaluation failed
	Reason  string
}

func (e *EvaluationError) Error() string {
	return e.Element + ": " + e.Reason
}

// checkInputs validates the input list of an element under construction.
func checkInputs(name string, min int, ins []Element) error {
	if len(ins) < min {
		return &ConstructionError{
			Element: name,
			Reason:  "not enough inputs: got " + strconv.Itoa(len(ins)) + ", need at least " + strconv.Itoa(min),
		}
	}
	for i, in := range ins {
		if in == nil {
			return &ConstructionError{Element: name, Reason: "input " + strconv.Itoa(i) + " is nil"}
		}
	}
	return nil
}
