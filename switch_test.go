// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim_test

import (
	"testing"

	"github.com/db47h/logsim"
	"github.com/db47h/logsim/loglib"
)

func TestSwitch(t *testing.T) {
	s, err := logsim.NewSwitch(logsim.Vcc)
	if err != nil {
		t.Fatal(err)
	}
	if s.Flipped() {
		t.Error("new switch starts flipped")
	}
	v, err := logsim.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("unflipped Switch(Vcc) = false")
	}

	// single flip inverts on the next evaluation
	s.Flip()
	if !s.Flipped() {
		t.Error("Flipped() = false after Flip")
	}
	v, err = logsim.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	if v {
		t.Error("flipped Switch(Vcc) = true")
	}

	// double flip is the identity
	s.Flip()
	v, err = logsim.Evaluate(s)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("double-flipped Switch(Vcc) = false")
	}
}

// the flag is read at evaluation time: flips between two evaluations of the
// same enclosing circuit change the outcome with no rewiring.
func TestSwitchInCircuit(t *testing.T) {
	a, err := logsim.NewSwitch(logsim.Ground)
	if err != nil {
		t.Fatal(err)
	}
	b, err := logsim.NewSwitch(logsim.Ground)
	if err != nil {
		t.Fatal(err)
	}
	x, err := logsim.Xor(a, b)
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		flip *logsim.Switch
		exp  bool
	}{
		{nil, false}, // 0^0
		{a, true},    // 1^0
		{b, false},   // 1^1
		{a, true},    // 0^1
	}
	for i, d := range td {
		if d.flip != nil {
			d.flip.Flip()
		}
		v, err := logsim.Evaluate(x)
		if err != nil {
			t.Fatal(err)
		}
		if v != d.exp {
			t.Errorf("step %d: expected %v, got %v", i, d.exp, v)
		}
	}
}

// Mux(Switch(Vcc), Vcc, Ground): the unflipped switch reads true, so the
// mux selects its second data input (Ground); one flip reroutes it to the
// first (Vcc).
func TestSwitchedMux(t *testing.T) {
	sel, err := logsim.NewSwitch(logsim.Vcc)
	if err != nil {
		t.Fatal(err)
	}
	m, err := loglib.Mux(sel, logsim.Vcc, logsim.Ground)
	if err != nil {
		t.Fatal(err)
	}
	v, err := logsim.Evaluate(m)
	if err != nil {
		t.Fatal(err)
	}
	if v {
		t.Error("sel=true must select b (Ground)")
	}
	sel.Flip()
	v, err = logsim.Evaluate(m)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("sel=false must select a (Vcc)")
	}
}
