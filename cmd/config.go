// Package cmd implements the command-line interface for dsbox.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dsbox/dsbox/color"
	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/filesystem"
	"github.com/dsbox/dsbox/icon"
	"github.com/dsbox/dsbox/log"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	msg := fmt.Sprintf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

func completionConfigKeys(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	if toComplete != "" {
		keys = fuzzy.FindFold(toComplete, keys)
	}

	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// parseValue converts raw command-line input to the type of the key's default value.
func parseValue(key string, value []string) (any, error) {
	switch config.Default[key].Value.(type) {
	case string:
		return value[0], nil
	case int:
		parsed, err := strconv.Atoi(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", value[0])
		}
		return parsed, nil
	case float64:
		parsed, err := strconv.ParseFloat(value[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value: %s", value[0])
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(value[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", value[0])
		}
		return parsed, nil
	case []string:
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported type for key %s", key)
	}
}

// writeConfig persists viper state, creating the file on first write.
func writeConfig() {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		handleErr(viper.SafeWriteConfig())
	default:
		handleErr(err)
	}
}

// confirm asks the user a yes/no question unless skip is set.
func confirm(message string, skip bool) bool {
	if skip {
		return true
	}

	var response bool
	handleErr(survey.AskOne(&survey.Confirm{Message: message, Default: false}, &response))
	return response
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing application configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the configuration keys to retrieve information for")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for specified configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))

			for _, key := range keys {
				if _, ok := config.Default[key]; !ok {
					handleErr(errUnknownKey(key))
				}

				fields = append(fields, config.Default[key])
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value to assign to the configuration key")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configSetCmd updates the value of a specific configuration key.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Update the value of a specified configuration key",
	Example:           "  dsbox config set stack.growth_factor 1.5\n  dsbox config set -k logs.write -v true",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var key string
		var value []string

		flagKey := lo.Must(cmd.Flags().GetString("key"))
		flagValue := lo.Must(cmd.Flags().GetStringSlice("value"))

		switch {
		case len(args) >= 1:
			key = args[0]
		case flagKey != "":
			key = flagKey
		default:
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		switch {
		case len(args) >= 2:
			value = args[1:]
		case len(flagValue) > 0:
			value = flagValue
		default:
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		v, err := parseValue(key, value)
		handleErr(err)

		previous := viper.Get(key)
		viper.Set(key, v)

		// stack settings are validated together so a bad factor never reaches the file
		if _, err := config.Stack(); err != nil {
			viper.Set(key, previous)
			handleErr(err)
		}

		writeConfig()
		log.WithFields(log.Fields{"key": key, "value": v}).Info("config updated")

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The specific configuration key to retrieve")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configGetCmd.SetOut(os.Stdout)
}

// configGetCmd retrieves the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a specified configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var key string
		flagKey := lo.Must(cmd.Flags().GetString("key"))

		switch {
		case len(args) >= 1:
			key = args[0]
		case flagKey != "":
			key = flagKey
		default:
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		cmd.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Forcefully overwrite the existing configuration file")
}

// configWriteCmd serializes the current in-memory configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Persist the current in-memory configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			force          = lo.Must(cmd.Flags().GetBool("force"))
			configFilePath = where.ConfigFile()
		)

		if force {
			exists := lo.Must(filesystem.API().Exists(configFilePath))
			if exists {
				handleErr(filesystem.API().Remove(configFilePath))
			}
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf(
			"%s wrote config to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			configFilePath,
		)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
	configDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// configDeleteCmd removes the configuration file.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Permanently remove the configuration file from the system",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm("Delete the config file?", lo.Must(cmd.Flags().GetBool("yes"))) {
			return
		}

		handleErr(filesystem.API().Remove(where.ConfigFile()))
		fmt.Printf(
			"%s deleted config\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to restore to its default value")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore all configuration settings to their defaults")
	configResetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation when resetting everything")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configResetCmd restores configuration keys to their default values.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a specified configuration key to its default value",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(fmt.Errorf("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			key = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			if !confirm("Reset every config value?", lo.Must(cmd.Flags().GetBool("yes"))) {
				return
			}

			for key, field := range config.Default {
				viper.Set(key, field.Value)
			}
		} else if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		} else {
			viper.Set(key, config.Default[key].Value)
		}

		writeConfig()

		if all {
			fmt.Printf(
				"%s reset all config values\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
			)
		} else {
			fmt.Printf(
				"%s reset %s to default value %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(key),
				style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[key].Value)),
			)
		}
	},
}
