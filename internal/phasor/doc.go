// Package phasor implements the conversion engine: coordinate transforms
// between rectangular and polar form, angle normalization, display-string
// formatting, and the conversion session that ties them together into an
// immutable result consumed by the presentation surfaces.
package phasor
