package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ipahub/ipahub-cli/internal/config"
	ipaherr "github.com/ipahub/ipahub-cli/internal/errors"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/ingest"
	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/ipahub/ipahub-cli/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	importFormat   string
	importMerge    bool
	importAppsOnly bool
)

var importCmd = &cobra.Command{
	Use:   "import [source]",
	Short: "Import a repository document into the draft",
	Long: `Import an external repository into the draft. The source is a local file or
an https URL carrying a JSON document (own schema, synonym keys, or a
"source"-wrapped variant), or with --format apt the base URL of a
Debian-control package index.

The draft is only replaced after the whole ingestion succeeds; a failed
import leaves the current draft untouched. With --merge the ingested apps are
merged into the existing draft instead. With --apps-only the input is treated
as a bare app list (or a single app object) from an untrusted generator and
merged defensively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.import.source", map[string]interface{}{
			"source": source, "format": importFormat,
		}))

		ingested, err := runIngestion(cmd, cfg, source)
		if err != nil {
			var hubErr *ipaherr.IpaHubError
			if ipaherr.AsIpaHubError(err, &hubErr) {
				return fmt.Errorf("%s", hubErr.FormatDetailed())
			}
			return err
		}

		if importAppsOnly || importMerge {
			if err := repository.MergeApps(ingested.Apps); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("errSaveDraft"), err)
			}
		} else {
			if err := repository.SaveDraft(*ingested); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("errSaveDraft"), err)
			}
		}

		fmt.Printf("%s\n", i18n.T("cmd.import.success", map[string]interface{}{
			"count": len(ingested.Apps),
		}))
		return nil
	},
}

// runIngestion resolves the source bytes and runs the matching normalizer.
// It returns a complete candidate Repo or an error, never a partial result.
func runIngestion(cmd *cobra.Command, cfg *models.Config, source string) (*models.Repo, error) {
	client := ingest.NewClient(cfg.Import)
	ctx := cmd.Context()

	if importFormat == "apt" {
		utils.Debug("fetching APT repository %s", source)
		return ingest.NewAPTSource(client).Fetch(ctx, source)
	}

	var data []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		utils.Debug("fetching JSON document %s", source)
		data, err = client.Get(ctx, source)
		if err != nil {
			return nil, ipaherr.NewFetchError(
				fmt.Sprintf("failed to download %s", source), err)
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", i18n.T("cmd.import.errReadFile"), err)
		}
	}

	if importAppsOnly {
		apps, err := ingest.AppsFromUntrusted(data)
		if err != nil {
			return nil, err
		}
		return &models.Repo{Apps: apps}, nil
	}

	return ingest.Normalize(data)
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "json", "source format (json, apt)")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "merge apps into the draft instead of replacing it")
	importCmd.Flags().BoolVar(&importAppsOnly, "apps-only", false, "treat input as an untrusted app list and merge it")
}
