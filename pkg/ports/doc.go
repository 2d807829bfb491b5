/*
Package ports defines the driven ports (interfaces) for the Espalier solver.

These interfaces decouple the solver loop from external implementations,
allowing it to work with various memo store backends and arbitrary task
strategies.

# Key Interfaces

  - SubtaskStore: the goal-to-solution memo store (memory, ordered tree, Redis).
  - Subtask: the accessor a running task uses to read subgoal solutions.
  - Task: the decomposition strategy callers implement per problem.
*/
package ports
