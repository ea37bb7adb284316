// Package profile measures the buffer work a stack performs while it is filled.
package profile

import (
	"errors"
	"fmt"

	"github.com/dsbox/dsbox/stack"
)

// ErrInvalidSize is returned by Run when asked to push a negative number of elements.
var ErrInvalidSize = errors.New("size must be >= 0")

// Growth describes one buffer enlargement.
type Growth struct {
	// Push is the 1-based index of the push that triggered the growth.
	Push int `json:"push"`
	From int `json:"from"`
	To   int `json:"to"`
	// Moves is the number of elements copied into the new buffer.
	Moves int `json:"moves"`
}

// Result summarizes the cost of filling a stack with n elements.
type Result struct {
	N          int      `json:"n"`
	Cap        int      `json:"cap"`
	Moves      int      `json:"moves"`
	Growths    []Growth `json:"growths"`
	MaxPush    int      `json:"max_push"`
	MovesPerOp float64  `json:"moves_per_op"`
}

// Run pushes n elements onto a stack built from cfg and records every growth event.
func Run(n int, cfg stack.Config) (*Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, n)
	}

	s, err := stack.NewWithConfig[int](cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{N: n}
	for i := range n {
		before, capBefore := s.Stats().Moves, s.Cap()
		s.Push(i)

		if s.Cap() != capBefore {
			moves := s.Stats().Moves - before
			result.Growths = append(result.Growths, Growth{
				Push:  i + 1,
				From:  capBefore,
				To:    s.Cap(),
				Moves: moves,
			})
			// a push that grows copies every live element and then writes one more
			result.MaxPush = max(result.MaxPush, moves+1)
		} else {
			result.MaxPush = max(result.MaxPush, 1)
		}
	}

	result.Cap = s.Cap()
	result.Moves = s.Stats().Moves
	if n > 0 {
		result.MovesPerOp = float64(result.Moves) / float64(n)
	}
	return result, nil
}
