/*
Package domain contains the core domain models for the water jug puzzle.

It defines the jug levels explored by the solver, the six actions that move between them,
and the trace of steps returned to callers. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Puzzle: Two jug capacities and the amount wanted in either jug.
  - State: The current fill level of both jugs.
  - Action: One of six deterministic transitions (fill, empty or transfer).
  - Step / Trace: The ordered record of actions and resulting states that reaches a goal.
  - Result: The outcome of a solve, as surfaced by the adapters.
*/
package domain
