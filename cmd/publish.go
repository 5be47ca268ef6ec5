package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/publish"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var publishToken string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the exported document to a persistent URL",
	Long: `Export the draft and upload the document as a public GitHub Gist,
printing the raw URL installer clients can subscribe to. The token comes
from --token or the IPAHUB_GITHUB_TOKEN environment variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		token := publishToken
		if token == "" {
			token = os.Getenv("IPAHUB_GITHUB_TOKEN")
		}
		if token == "" {
			return fmt.Errorf("%s", i18n.T("cmd.publish.errNoToken"))
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		draft, err := repository.LoadDraft()
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadDraft"), err)
		}

		doc := repository.Exporter().Build(draft, models.ExportConfig{
			Deduplicate:        cfg.Export.Deduplicate,
			FilterIncompatible: cfg.Export.FilterIncompatible,
		})

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.export.errFailed"), err)
		}

		publisher := publish.NewGistPublisher(token)
		url, err := publisher.Publish(cmd.Context(), "repo.json", data)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.publish.errUpload"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.publish.success", map[string]interface{}{"url": url}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().StringVar(&publishToken, "token", "", "GitHub token with gist scope")
}
