// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"os"

	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/icon"
	"github.com/dsbox/dsbox/linkedlist"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceP("append", "a", []string{}, "Values to append, in order")
	listCmd.Flags().StringSliceP("prepend", "p", []string{}, "Values to prepend after appending, in order")
	listCmd.Flags().IntP("pop-front", "n", 0, "Number of elements to remove from the front afterwards")

	listCmd.SetOut(os.Stdout)
}

// listCmd builds a singly linked list from flags and prints it.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Build a singly linked list and print it",
	Example: "  dsbox list --append 1,2,3 --prepend 0 --pop-front 1",
	Run: func(cmd *cobra.Command, args []string) {
		l := linkedlist.New[string]()

		for _, value := range lo.Must(cmd.Flags().GetStringSlice("append")) {
			l.Append(value)
		}

		for _, value := range lo.Must(cmd.Flags().GetStringSlice("prepend")) {
			l.Prepend(value)
		}

		for range lo.Must(cmd.Flags().GetInt("pop-front")) {
			value, ok := l.PopFront().Get()
			if !ok {
				cmd.Println(style.Faint(icon.Get(icon.Empty) + " list is empty"))
				break
			}
			cmd.Printf("%s %s\n", icon.Get(icon.Pop), value)
		}

		cmd.Println(style.Fg(color.Purple)(l.String()))
		cmd.Println(style.Faint(util.Quantify(l.Len(), "element", "elements")))
	},
}
