package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goshrc/gosh/core"
	"github.com/goshrc/gosh/core/config"
)

var (
	cfgPath string
	oneShot string
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// Running without a config file is fine, fall back to the defaults.
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "An interactive command shell",
	Long: `gosh reads one line at a time, parses quoting, escaping, output
redirection and pipelines, then runs builtins in-process and everything
else as external programs.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(configuration)
		if err != nil {
			return err
		}

		var status int
		if oneShot != "" {
			shell.RunCommand(oneShot)
			status = shell.LastStatus()
		} else {
			status = shell.Run()
		}
		shell.Close()

		if status != 0 {
			os.Exit(status)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "run a single command line and exit")
}
