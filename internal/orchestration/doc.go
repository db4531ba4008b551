// Package orchestration drives the two-lane demonstration: it creates the
// generators, interleaves requests to them and hands every term to a
// presenter. It decouples the sequence engines from presentation via the
// Source and ValuePresenter interfaces.
package orchestration
