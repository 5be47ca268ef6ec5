package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the draft as an installer-client document",
	Long: `Run the export pipeline over the draft: an optional compatibility filter,
optional deduplication by app identity, then field-level sanitization into the
public JSON document.`,
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

		// Config supplies the defaults; explicit flags win.
		exportCfg := models.ExportConfig{
			Deduplicate:        cfg.Export.Deduplicate,
			FilterIncompatible: cfg.Export.FilterIncompatible,
		}
		if cmd.Flags().Changed("dedupe") {
			exportCfg.Deduplicate, _ = cmd.Flags().GetBool("dedupe")
		}
		if cmd.Flags().Changed("filter-incompatible") {
			exportCfg.FilterIncompatible, _ = cmd.Flags().GetBool("filter-incompatible")
		}
		pretty := cfg.Export.Pretty
		if cmd.Flags().Changed("pretty") {
			pretty, _ = cmd.Flags().GetBool("pretty")
		}

		output := exportOutput
		if output == "" {
			output = cfg.Export.Output
		}

		exporter := repository.Exporter()
		doc := exporter.Build(draft, exportCfg)
		if err := exporter.WriteFile(doc, output, pretty); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.export.errFailed"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.export.success", map[string]interface{}{
			"output": output, "count": len(doc.Apps), "total": len(draft.Apps),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default from config)")
	exportCmd.Flags().Bool("dedupe", true, "keep only the highest version per app identity")
	exportCmd.Flags().Bool("filter-incompatible", false, "drop apps needing jailbreak/TrollStore/JIT")
	exportCmd.Flags().Bool("pretty", true, "indent the JSON output")
}
