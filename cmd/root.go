package cmd

import (
	"fmt"
	"os"

	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/internal/version"
	"github.com/ipahub/ipahub-cli/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	workDir string
	lang    string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "ipahub",
	Short: "IpaHub CLI - A tool for managing sideload repositories",
	Long: `IpaHub CLI is a command-line tool for assembling sideloadable-app repository
manifests. It maintains a local draft, ingests external repositories (JSON or
APT-style package indexes), and exports a validated JSON document consumable
by installer clients.`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := i18n.Init(lang); err != nil {
			fmt.Fprintf(os.Stderr, "i18n init failed: %v\n", err)
		}
		applyCommandLocalization()

		logConfig := utils.DefaultLoggerConfig()
		if verbose {
			logConfig.Level = utils.LogLevelDebug
		}
		if noColor {
			logConfig.EnableColor = false
		}
		utils.InitGlobalLogger(logConfig)

		return nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ipahub.yaml)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "work-dir", "w", ".", "repository workspace directory")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "interface language (en, zh)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
