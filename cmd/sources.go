package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ipahub/ipahub-cli/internal/config"
	ipaherr "github.com/ipahub/ipahub-cli/internal/errors"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/client"
	"github.com/ipahub/ipahub-cli/pkg/ingest"
	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage named remote sources",
	Long: `Manage the registry of named remote repositories the workspace can import
from. Each source records a URL and an ingestion format.`,
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add [name] [url]",
	Short: "Register a remote source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadSourcesRegistry()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if err := registry.Add(args[0], args[1], client.SourceFormat(format)); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.sources.errAdd"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.sources.added", map[string]interface{}{"name": args[0]}))
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a remote source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadSourcesRegistry()
		if err != nil {
			return err
		}

		if err := registry.Remove(args[0]); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.sources.errRemove"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.sources.removed", map[string]interface{}{"name": args[0]}))
		return nil
	},
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadSourcesRegistry()
		if err != nil {
			return err
		}

		sources := registry.List()
		fmt.Printf("%s\n\n", i18n.T("cmd.sources.title", map[string]interface{}{"count": len(sources)}))
		for _, source := range sources {
			fetched := "-"
			if !source.LastFetched.IsZero() {
				fetched = source.LastFetched.Format("2006-01-02 15:04")
			}
			fmt.Printf("  %-20s %-6s %s (%s)\n", source.Name, source.Format, source.URL, fetched)
		}
		return nil
	},
}

var sourcesImportCmd = &cobra.Command{
	Use:   "import [name]",
	Short: "Import from a registered source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		registry, err := loadSourcesRegistry()
		if err != nil {
			return err
		}

		source, err := registry.Get(args[0])
		if err != nil {
			return err
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		httpClient := ingest.NewClient(cfg.Import)
		ctx := cmd.Context()

		var ingested *models.Repo
		switch source.Format {
		case client.FormatAPT:
			ingested, err = ingest.NewAPTSource(httpClient).Fetch(ctx, source.URL)
			if err != nil {
				return formatIngestError(err)
			}
		default:
			data, err := httpClient.Get(ctx, source.URL)
			if err != nil {
				return formatIngestError(ipaherr.NewFetchError(
					fmt.Sprintf("failed to download %s", source.URL), err))
			}
			ingested, err = ingest.Normalize(data)
			if err != nil {
				return formatIngestError(err)
			}
		}

		merge, _ := cmd.Flags().GetBool("merge")
		if merge {
			err = repository.MergeApps(ingested.Apps)
		} else {
			err = repository.SaveDraft(*ingested)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errSaveDraft"), err)
		}

		if err := registry.MarkFetched(source.Name); err != nil {
			return err
		}

		fmt.Printf("%s\n", i18n.T("cmd.import.success", map[string]interface{}{
			"count": len(ingested.Apps),
		}))
		return nil
	},
}

func loadSourcesRegistry() (*client.Registry, error) {
	absRoot, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
	}
	return client.LoadRegistry(absRoot)
}

func formatIngestError(err error) error {
	var hubErr *ipaherr.IpaHubError
	if ipaherr.AsIpaHubError(err, &hubErr) {
		return fmt.Errorf("%s", hubErr.FormatDetailed())
	}
	return err
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesImportCmd)

	sourcesAddCmd.Flags().StringP("format", "f", "json", "source format (json, apt)")
	sourcesImportCmd.Flags().Bool("merge", false, "merge apps into the draft instead of replacing it")
}
