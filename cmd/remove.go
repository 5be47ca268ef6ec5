package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [id-or-bundle-id]",
	Short: "Remove app entries from the draft",
	Long: `Remove draft entries by stable id, or by exact bundle identifier when no
id matches. Bundle identifier removal drops every matching entry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		removed, err := repository.RemoveApp(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.remove.errRemove"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.remove.removed", map[string]interface{}{"count": removed}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
