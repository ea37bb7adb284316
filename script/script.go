// Package script parses and replays operation scripts against a stack, recording every step.
package script

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/dsbox/dsbox/log"
	"github.com/dsbox/dsbox/stack"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Kind names a stack operation.
type Kind string

const (
	Push  Kind = "push"
	Pop   Kind = "pop"
	Peek  Kind = "peek"
	Len   Kind = "len"
	Cap   Kind = "cap"
	Empty Kind = "empty"
	Clear Kind = "clear"
	Iter  Kind = "iter"
)

// Kinds lists every supported operation in display order.
func Kinds() []Kind {
	return []Kind{Push, Pop, Peek, Len, Cap, Empty, Clear, Iter}
}

// ErrUnknownOp is wrapped by Parse when a token is not an operation.
var ErrUnknownOp = errors.New("unknown operation")

// ErrMissingArgument is wrapped by Parse when push is the last token.
var ErrMissingArgument = errors.New("missing argument")

// Op is a single parsed operation. Arg is only set for Push.
type Op struct {
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if o.Kind == Push {
		return fmt.Sprintf("%s %s", o.Kind, o.Arg)
	}
	return string(o.Kind)
}

// Parse turns tokens such as ["push", "1", "pop"] into operations.
func Parse(tokens []string) ([]Op, error) {
	var ops []Op

	for i := 0; i < len(tokens); i++ {
		token := strings.ToLower(strings.TrimSpace(tokens[i]))
		if token == "" {
			continue
		}

		kind := Kind(token)
		if !lo.Contains(Kinds(), kind) {
			return nil, unknownOp(token)
		}

		op := Op{Kind: kind}
		if kind == Push {
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: push at position %d needs a value", ErrMissingArgument, i)
			}
			i++
			op.Arg = tokens[i]
		}

		ops = append(ops, op)
	}

	return ops, nil
}

// ParseString splits s on whitespace and parses the resulting tokens.
func ParseString(s string) ([]Op, error) {
	return Parse(strings.Fields(s))
}

// Suggest returns the operation closest to token, preferring the best fuzzy match.
func Suggest(token string) (Kind, bool) {
	names := lo.Map(Kinds(), func(k Kind, _ int) string { return string(k) })
	ranks := fuzzy.RankFindNormalizedFold(token, names)
	if len(ranks) == 0 {
		return "", false
	}

	sort.Sort(ranks)
	return Kind(ranks[0].Target), true
}

func unknownOp(token string) error {
	if suggestion, ok := Suggest(token); ok {
		return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownOp, token, suggestion)
	}
	return fmt.Errorf("%w %q, expected one of %s", ErrUnknownOp, token, strings.Join(
		lo.Map(Kinds(), func(k Kind, _ int) string { return string(k) }), ", ",
	))
}

// Options configures a script run.
type Options struct {
	// Config drives the stack the script runs against.
	Config stack.Config
	// From seeds the stack bottom to top before the first operation.
	From []string
}

// Run replays ops on a fresh stack and reports every step.
func Run(ops []Op, options *Options) (*Report, error) {
	s, err := stack.NewWithConfig[string](options.Config)
	if err != nil {
		return nil, err
	}

	for _, item := range options.From {
		s.Push(item)
	}

	report := &Report{Steps: make([]Step, 0, len(ops))}
	for _, op := range ops {
		step := apply(s, op)
		log.Debugf("script: %s -> %q (len=%d cap=%d)", op, step.Result, step.Len, step.Cap)
		report.Steps = append(report.Steps, step)
	}

	report.Final = s.Values()
	report.Len = s.Len()
	report.Cap = s.Cap()
	report.Stats = s.Stats()
	return report, nil
}

func apply(s *stack.Stack[string], op Op) Step {
	step := Step{Op: op.Kind, Arg: op.Arg}

	switch op.Kind {
	case Push:
		s.Push(op.Arg)
	case Pop:
		step.outcome(s.Pop())
	case Peek:
		step.outcome(s.Peek())
	case Len:
		step.Result = strconv.Itoa(s.Len())
	case Cap:
		step.Result = strconv.Itoa(s.Cap())
	case Empty:
		step.Result = strconv.FormatBool(s.IsEmpty())
	case Clear:
		s.Clear()
	case Iter:
		step.Result = strings.Join(slices.Collect(s.All()), " ")
	}

	step.Len = s.Len()
	step.Cap = s.Cap()
	return step
}
