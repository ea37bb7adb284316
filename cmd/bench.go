// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/log"
	"github.com/dsbox/dsbox/profile"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntP("size", "n", 0, "Number of elements to push")
	lo.Must0(viper.BindPFlag(key.BenchSize, benchCmd.Flags().Lookup("size")))
	benchCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON object")

	benchCmd.SetOut(os.Stdout)
}

// benchCmd reports the buffer work performed while filling a stack.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Show the amortized cost of pushing n elements",
	Long: `Push n elements onto an empty stack and report every buffer growth.

The total number of element moves stays within a constant multiple of n,
which is what makes push O(1) amortized.`,
	Example: "  dsbox bench -n 100000\n  dsbox bench -n 1000 --growth-factor 1.5",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Stack()
		handleErr(err)

		result, err := profile.Run(viper.GetInt(key.BenchSize), cfg)
		handleErr(err)
		log.Infof("bench: %d pushes, %d moves, %d growths", result.N, result.Moves, len(result.Growths))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(result))
			return
		}

		handleErr(writeBench(cmd.OutOrStdout(), result, util.TerminalWidth(80)))
	},
}

// writeBench prints one histogram row per growth, scaled so the widest bar fits in width.
func writeBench(w io.Writer, result *profile.Result, width int) error {
	header := style.New().Bold(true).Foreground(color.HiPurple).Render
	if _, err := fmt.Fprintf(w, "%s %s\n\n", header("pushes"), style.Fg(color.Yellow)(fmt.Sprint(result.N))); err != nil {
		return err
	}

	const labelWidth = 24
	barWidth := util.Max(width-labelWidth-10, 10)
	widest := lo.MaxBy(result.Growths, func(a, b profile.Growth) bool { return a.Moves > b.Moves }).Moves

	for _, g := range result.Growths {
		length := 0
		if widest > 0 {
			length = util.Clamp(g.Moves*barWidth/widest, 0, barWidth)
		}

		label := fmt.Sprintf("#%-7d %6d → %-6d", g.Push, g.From, g.To)
		bar := style.Bar.Render(strings.Repeat("█", length))
		if _, err := fmt.Fprintf(w, "%-*s %s %d\n", labelWidth, label, bar, g.Moves); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		w,
		"\n%s, %s, capacity %d\n%s %.3f moves per push, worst single push %d\n",
		util.Quantify(len(result.Growths), "growth", "growths"),
		util.Quantify(result.Moves, "move", "moves"),
		result.Cap,
		style.Faint("amortized:"),
		result.MovesPerOp,
		result.MaxPush,
	)
	return err
}
