package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List app entries in the draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		draft, err := repository.LoadDraft()
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadDraft"), err)
		}

		fmt.Printf("%s\n\n", i18n.T("cmd.list.title", map[string]interface{}{
			"name": draft.Name, "count": len(draft.Apps),
		}))

		for _, app := range draft.Apps {
			fmt.Printf("  %s\n", app.ID)
			fmt.Printf("    %s %s (%s)\n", app.Name, app.Version, app.BundleIdentifier)
			fmt.Printf("    %s: %s\n", i18n.T("cmd.list.status"), app.CompatibilityStatus)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
