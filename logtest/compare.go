// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logtest provides utility functions for testing element networks.
package logtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/logsim"
)

// maxExhaustiveBits caps exhaustive sweeps; above it, inputs are sampled
// randomly for 1<<maxExhaustiveBits iterations.
const maxExhaustiveBits = 12

// A BuildFn wires a network over the given input elements and returns its
// output element.
type BuildFn func(ins []logsim.Element) (logsim.Element, error)

func inString(in []bool) string {
	var b strings.Builder
	for i, v := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "in%d=%v", i, v)
	}
	return b.String()
}

// sweep drives the input vector through all combinations (or a random
// sample for wide inputs) and calls check after each assignment.
func sweep(t *testing.T, inputs []bool, check func()) {
	t.Helper()
	n := len(inputs)
	if n <= maxExhaustiveBits {
		for v := 0; v < 1<<uint(n); v++ {
			for bit := range inputs {
				inputs[bit] = v&(1<<uint(bit)) != 0
			}
			check()
		}
		return
	}
	// all 0, all 1, then random
	for bit := range inputs {
		inputs[bit] = false
	}
	check()
	for bit := range inputs {
		inputs[bit] = true
	}
	check()
	for i := 0; i < 1<<maxExhaustiveBits; i++ {
		for bit := range inputs {
			inputs[bit] = rand.Int63()&(1<<62) != 0
		}
		check()
	}
}

func makeInputs(t *testing.T, inputs []bool) []logsim.Element {
	t.Helper()
	ins := make([]logsim.Element, len(inputs))
	for i := range ins {
		k := i
		in, err := logsim.Input(func() bool { return inputs[k] })
		if err != nil {
			t.Fatal(err)
		}
		ins[i] = in
	}
	return ins
}

// Compare builds two networks over the same n inputs and fails the test for
// any input combination on which their outputs differ.
func Compare(t *testing.T, n int, build1, build2 BuildFn) {
	t.Helper()

	inputs := make([]bool, n)
	ins := makeInputs(t, inputs)
	e1, err := build1(ins)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := build2(ins)
	if err != nil {
		t.Fatal(err)
	}
	sweep(t, inputs, func() {
		v1, err := logsim.Evaluate(e1)
		if err != nil {
			t.Fatal(err)
		}
		v2, err := logsim.Evaluate(e2)
		if err != nil {
			t.Fatal(err)
		}
		if v1 != v2 {
			t.Errorf("%s: %s = %v, %s = %v", inString(inputs), logsim.Name(e1), v1, logsim.Name(e2), v2)
		}
	})
}

// CompareTruth builds a network over n inputs and checks its output against
// a reference boolean function for every input combination.
func CompareTruth(t *testing.T, n int, build BuildFn, truth func(in []bool) bool) {
	t.Helper()

	inputs := make([]bool, n)
	ins := makeInputs(t, inputs)
	e, err := build(ins)
	if err != nil {
		t.Fatal(err)
	}
	sweep(t, inputs, func() {
		v, err := logsim.Evaluate(e)
		if err != nil {
			t.Fatal(err)
		}
		if exp := truth(inputs); v != exp {
			t.Errorf("%s: expected %v, got %v", inString(inputs), exp, v)
		}
	})
}
