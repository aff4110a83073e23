// Package di keeps the record of what a composition root wired.
//
// The composition root constructs every dependency itself, then records each
// one on a Wiring under a DependencyKey. Before anything runs it calls
// Require with the keys the program cannot do without, and Resolve hands
// back typed values. Missing, nil, duplicate and mistyped entries all surface
// as errors at build time instead of as nil dereferences later.
//
// Nothing here chooses an implementation: a key labels the value the caller
// already decided to pass in. There is no reflection-driven injection and no
// container graph.
//
// Import
//
//	"github.com/sghaida/odisort/di"
package di
