// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"encoding/json"
	"os"
	"text/template"

	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/constant"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	versionCmd.Flags().BoolP("json", "j", false, "Format the build metadata as a JSON object")
}

var versionTemplate = lo.Must(template.New("version").Funcs(map[string]any{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Go" }}              {{ bold .GoVersion }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`))

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Long:  "Display the current application version, build revision, platform architecture, and related metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := version.Current()
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
