// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/constant"
	"github.com/dsbox/dsbox/icon"
	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/log"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringSliceP("from", "f", []string{}, "Seed the playground stack, bottom first")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Float64P("growth-factor", "g", 0, "Override the stack growth factor")
	lo.Must0(viper.BindPFlag(key.StackGrowthFactor, rootCmd.PersistentFlags().Lookup("growth-factor")))

	rootCmd.PersistentFlags().Int("initial-capacity", 0, "Override the initial stack capacity")
	lo.Must0(viper.BindPFlag(key.StackInitialCapacity, rootCmd.PersistentFlags().Lookup("initial-capacity")))

	rootCmd.PersistentFlags().Float64("shrink-threshold", 0, "Override the stack shrink threshold (0 disables shrinking)")
	lo.Must0(viper.BindPFlag(key.StackShrinkThreshold, rootCmd.PersistentFlags().Lookup("shrink-threshold")))
}

// rootCmd opens the interactive stack playground.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A playground for classic generic data structures",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A playground for classic generic data structures"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		cfg, err := config.Stack()
		handleErr(err)

		options := tui.Options{
			Config:    cfg,
			Seed:      lo.Must(cmd.Flags().GetStringSlice("from")),
			UndoLimit: viper.GetInt(key.TUIUndoLimit),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
