// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// An Element is any logic unit that can be evaluated to a boolean signal.
//
// Signals are plain bools: there is no tri-state and no "unknown" value.
// An element that cannot be driven is a construction error, never a runtime
// floating state.
//
// Implementations must evaluate their own inputs through Pass.Eval rather
// than calling Eval on them directly, so that runaway recursion caused by a
// wiring cycle is caught at a bounded depth instead of overflowing the
// stack.
type Element interface {
	// Eval computes the element's output from the current value of its
	// inputs. It must recompute on every call: elements never cache a prior
	// result, and evaluating the same element twice with unchanged inputs
	// returns the same value.
	Eval(p *Pass) (bool, error)
}

// DefaultMaxDepth is the recursion limit applied by Evaluate. It is far
// deeper than any reasonable combinational circuit; hitting it almost
// certainly means a caller-defined element closed a wiring cycle.
const DefaultMaxDepth = 4096

// A Pass tracks the recursion depth of a single outer evaluation. A zero
// Pass is not usable; passes are created by Evaluate and EvaluateDepth and
// handed down to Element.Eval.
type Pass struct {
	depth int
	limit int
}

// Eval evaluates e one level deeper into the current pass.
func (p *Pass) Eval(e Element) (bool, error) {
	if e == nil {
		return false, &EvaluationError{Element: "?", Reason: "nil element"}
	}
	if p.depth >= p.limit {
		return false, &EvaluationError{
			Element: Name(e),
			Reason:  fmt.Sprintf("recursion depth %d exceeded (wiring cycle?)", p.limit),
		}
	}
	p.depth++
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithFields(log.Fields{"element": Name(e), "depth": p.depth}).Trace("eval")
	}
	v, err := e.Eval(p)
	p.depth--
	return v, err
}

// Depth returns the current recursion depth of the pass.
func (p *Pass) Depth() int { return p.depth }

// Evaluate runs a fresh evaluation pass over e and returns its output
// signal. It can be called any number of times; each call walks the full
// input subtree again.
func Evaluate(e Element) (bool, error) {
	return EvaluateDepth(e, DefaultMaxDepth)
}

// EvaluateDepth is Evaluate with a caller-chosen recursion limit.
func EvaluateDepth(e Element, maxDepth int) (bool, error) {
	p := &Pass{limit: maxDepth}
	return p.Eval(e)
}

// Name returns a display name for e: the value of its Name method if it has
// one, the element's Go type otherwise.
func Name(e Element) string {
	if n, ok := e.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", e)
}
