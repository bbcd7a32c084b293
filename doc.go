// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logsim provides a small combinational logic simulator where circuits
are built by wiring elements directly into one another and evaluated on
demand.

Unlike a stepped simulation, there is no separate build-then-run phase:
evaluating any element recursively evaluates its declared inputs, bottoming
out at constant sources, and the result flows back up through boolean
reductions. Nothing is cached; every call to Evaluate recomputes the whole
input subtree from its current state.

The only stateful element is the Switch, which wraps a single input with a
togglable inversion flag read at each evaluation.
*/
package logsim
