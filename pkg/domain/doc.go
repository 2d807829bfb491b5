/*
Package domain contains the core value types for the Espalier solver.

It defines the signals exchanged between a task strategy and the solver
loop (Dependency, TailRedirect), the terminal error kinds
(CircularDependencyError, TaskError, StoreError), the resumable State
cell carried by in-flight goals, and the lifecycle events used for
observability. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Dependency: the structured "goal not solved yet" suspension signal.
  - TailRedirect: "my answer is that goal's answer" frame replacement.
  - State: task-owned partial progress preserved across suspensions.
  - LifecycleHooks: callbacks observing evaluate/suspend/commit/fault.
*/
package domain
