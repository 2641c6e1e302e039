package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goshrc/gosh/core"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the commands the shell runs in-process.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string
		for name := range core.AllBuiltins {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
