/*
Package espalier is a dependency-driven memoizing evaluator: a framework for
evaluating recursively-defined functions (solve(goal) = f(solve(subgoal1), solve(subgoal2), ...))
without using the host's call stack for the recursion.

It replaces ordinary recursion with an explicit continuation/stack machine. A
task strategy decomposes a goal and requests subgoal solutions; whenever a
subgoal is not solved yet, the current goal is suspended onto a heap-resident
dependency stack and the solver switches to the subgoal. Each distinct goal is
computed at most once (solutions are memoized in a caller-supplied store), and
cyclic goal dependencies are detected and reported instead of looping or
overflowing the stack. The maximum recursion depth is bounded only by available
memory, not by the host's call-stack limit.

# Concept

Espalier separates three concerns, in the Hexagonal Architecture style: the
task strategy (your decomposition logic, a ports.Task), the memo store (any
associative container satisfying ports.SubtaskStore; adapters for an in-memory
map, an ordered tree, and Redis ship under pkg/adapters), and the solver loop
(the trampoline that owns the dependency stack). The solver is single-threaded
and fully synchronous; "suspension" is an explicit return-and-resume within one
control loop, never a scheduler yield.

# Usage

A stateless strategy is just a function. Fibonacci, memoized:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/pkg/adapters/memory"
	)

	func main() {
		fib := func(ctx context.Context, n int, sub espalier.Subtask[int, int]) (int, error) {
			if n < 2 {
				return n, nil
			}
			a, err := sub.Solve(ctx, n-1)
			if err != nil {
				return 0, err
			}
			b, err := sub.Solve(ctx, n-2)
			if err != nil {
				return 0, err
			}
			return a + b, nil
		}

		result, err := espalier.ExecuteFunc(context.Background(), 10, fib, memory.New[int, int]())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(result) // 55
	}

Strategies that do real work before requesting subgoals can keep partial
progress in the resumable state cell (see ports.Task), so resumption after a
subgoal resolves continues where the strategy left off instead of recomputing.
*/
package espalier
