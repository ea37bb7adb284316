// Package tui provides the interactive stack playground.
package tui

type state int

const (
	playgroundState state = iota
	inspectState
)
