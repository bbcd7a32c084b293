// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logsim_test

import (
	"fmt"

	"github.com/db47h/logsim"
)

// Wire an xor gate over two switches and toggle one of them. The circuit is
// never rebuilt; re-evaluating it picks up the new switch position.
func Example() {
	a, err := logsim.NewSwitch(logsim.Ground)
	if err != nil {
		panic(err)
	}
	b, err := logsim.NewSwitch(logsim.Ground)
	if err != nil {
		panic(err)
	}
	x, err := logsim.Xor(a, b)
	if err != nil {
		panic(err)
	}

	v, err := logsim.Evaluate(x)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	a.Flip()
	v, err = logsim.Evaluate(x)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// false
	// true
}
