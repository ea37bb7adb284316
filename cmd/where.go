// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"os"

	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget pairs a resolvable path with its flag.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", where.ConfigFile, "config-file", mo.None[string]()},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays the filesystem paths used by the application.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used for configuration and logs",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
