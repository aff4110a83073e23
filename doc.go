// Package odisort demonstrates explicit dependency wiring around a small
// sorting pipeline.
//
// A Runner sorts a sequence through an injected sorting.Strategy, formats it
// with a Printer and writes it to stdout. There are two Strategy
// implementations, and the choice between them is always made by the caller
// at composition time rather than discovered at runtime.
//
// Layout:
//   - sorting: the Strategy capability, Bubble and Insertion, input parsing
//   - printer: ", " separated formatting
//   - runner: sort → format → print, constructor injected
//   - di: wiring helpers that record what was injected
//   - app: the composition root
//   - config, logging: ambient configuration and logrus logging
//   - cmd/odisort: the process entry point
//   - examples/wiring: runnable walkthrough of each wiring style
package odisort
