package script

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dsbox/dsbox/stack"
	"github.com/samber/mo"
)

// Step records the outcome of one operation.
type Step struct {
	Op     Kind   `json:"op" jsonschema:"enum=push,enum=pop,enum=peek,enum=len,enum=cap,enum=empty,enum=clear,enum=iter,description=Operation name."`
	Arg    string `json:"arg,omitempty" jsonschema:"description=Value pushed. Only set for push."`
	Result string `json:"result,omitempty" jsonschema:"description=Value produced by the operation if any."`
	Empty  bool   `json:"empty,omitempty" jsonschema:"description=True when pop or peek found the stack empty."`
	Len    int    `json:"len" jsonschema:"description=Stack length after the operation."`
	Cap    int    `json:"cap" jsonschema:"description=Buffer capacity after the operation."`
}

func (s *Step) outcome(o mo.Option[string]) {
	value, ok := o.Get()
	s.Result = value
	s.Empty = !ok
}

// Report is the full trace of a script run.
type Report struct {
	Steps []Step      `json:"steps" jsonschema:"description=Every executed operation in order."`
	Final []string    `json:"final" jsonschema:"description=Remaining elements from top to bottom."`
	Len   int         `json:"len" jsonschema:"description=Final stack length."`
	Cap   int         `json:"cap" jsonschema:"description=Final buffer capacity."`
	Stats stack.Stats `json:"stats" jsonschema:"description=Buffer growth counters."`
}

// Write renders the report to w, either as indented JSON or as plain text.
func Write(w io.Writer, report *Report, asJson bool) error {
	if asJson {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	for _, step := range report.Steps {
		op := string(step.Op)
		if step.Op == Push {
			op += " " + step.Arg
		}

		var result string
		switch {
		case step.Empty:
			result = "<empty>"
		case step.Result != "":
			result = step.Result
		}

		if _, err := fmt.Fprintf(w, "%-16s %-12s len=%d cap=%d\n", op, result, step.Len, step.Cap); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		w,
		"\nfinal: [%s]\ngrowths=%d shrinks=%d moves=%d\n",
		strings.Join(report.Final, " "),
		report.Stats.Growths,
		report.Stats.Shrinks,
		report.Stats.Moves,
	)
	return err
}
