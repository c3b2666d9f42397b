// Package tui implements the terminal surface: a Bubble Tea form host
// for the conversion inputs and options, and a rendering surface for
// the formatted results, the numeric summary, and a character-cell
// vector plot.
package tui
