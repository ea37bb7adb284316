// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/filesystem"
	"github.com/dsbox/dsbox/script"
	"github.com/dsbox/dsbox/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.Flags().BoolP("json", "j", false, "Format the report as a JSON object")
	stackCmd.Flags().StringSliceP("from", "f", []string{}, "Seed the stack before running, bottom first")
	stackCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	// operations follow the flags so values such as -1 are not parsed as flags
	stackCmd.Flags().SetInterspersed(false)

	stackCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(script.Kinds(), func(k script.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}
	stackCmd.SetOut(os.Stdout)
}

// stackCmd replays a script of stack operations and prints every step.
var stackCmd = &cobra.Command{
	Use:   "stack [operations...]",
	Short: "Replay a sequence of stack operations",
	Long: `Run a whitespace separated script of operations against a fresh stack and report each step.

Operations:
  push <value> - place value on top
  pop          - remove and show the top value
  peek         - show the top value
  len, cap     - show length or buffer capacity
  empty        - report whether the stack is empty
  iter         - list the contents from top to bottom
  clear        - remove every element`,
	Example: "  dsbox stack push 1 push 2 push 3 pop peek len\n  dsbox stack -g 1.5 --json push a push b iter",
	Run: func(cmd *cobra.Command, args []string) {
		ops, err := script.Parse(args)
		handleErr(err)

		cfg, err := config.Stack()
		handleErr(err)

		report, err := script.Run(ops, &script.Options{
			Config: cfg,
			From:   lo.Must(cmd.Flags().GetStringSlice("from")),
		})
		handleErr(err)

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			handleErr(writeReportFile(path, report, asJson))
			return
		}

		handleErr(script.Write(cmd.OutOrStdout(), report, asJson))
	},
}

// writeReportFile writes the report to path, reporting close errors as well as write errors.
func writeReportFile(path string, report *script.Report, asJson bool) error {
	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}

	if err := script.Write(file, report, asJson); err != nil {
		util.Ignore(file.Close)
		return err
	}

	return file.Close()
}

func init() {
	stackCmd.AddCommand(stackSchemaCmd)
	stackSchemaCmd.SetOut(os.Stdout)
}

// stackSchemaCmd prints the JSON schema of the report produced by stack --json.
var stackSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for stack --json reports",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reportSchema()))
	},
}

func reportSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return t.Name()
	}

	return reflector.Reflect(&script.Report{})
}
