package cmd

import (
	"fmt"
	"os"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a repository workspace",
	Long: `Initialize a repository workspace by writing a configuration template and
an empty draft seeded from the configured defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "ipahub.yaml"

		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("%s", i18n.T("cmd.init.errExists", map[string]interface{}{"path": configPath}))
		}

		if err := config.SaveTemplate(configPath); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.init.errWriteConfig"), err)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}
		if err := repository.Initialize(); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errInitRepo"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.init.configCreated", map[string]interface{}{"path": configPath}))
		fmt.Printf("%s\n", i18n.T("cmd.init.draftCreated"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing configuration")
}
