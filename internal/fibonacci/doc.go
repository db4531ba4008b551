// Package fibonacci provides lazily evaluated, unbounded Fibonacci sequences.
// A Sequence keeps two terms of state and hands out one term per request;
// instances are fully independent of each other.
package fibonacci
