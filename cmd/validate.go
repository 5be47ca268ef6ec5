package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/ipahub/ipahub-cli/pkg/urlcheck"
	"github.com/spf13/cobra"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every URL field in the draft",
	Long: `Run the URL validator over the draft's repository- and app-level URL
fields. Findings are advisory; with --strict any finding makes the command
fail.`,
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

		findings := 0
		report := func(owner, field, url string, usage urlcheck.Usage) {
			if reason := urlcheck.Check(url, usage); reason != "" {
				findings++
				fmt.Printf("  %s: %s\n    %s\n", owner, field, reason)
			}
		}

		fmt.Printf("%s\n\n", i18n.T("cmd.validate.title"))

		report(draft.Name, "iconURL", draft.IconURL, urlcheck.UsageImage)
		report(draft.Name, "headerImageURL", draft.HeaderImageURL, urlcheck.UsageImage)
		report(draft.Name, "website", draft.Website, urlcheck.UsageWebsite)

		for _, app := range draft.Apps {
			owner := app.Name
			if owner == "" {
				owner = app.ID
			}
			report(owner, "downloadURL", app.DownloadURL, urlcheck.UsageFile)
			report(owner, "iconURL", app.IconURL, urlcheck.UsageImage)
			for i, screenshot := range app.ScreenshotURLs {
				report(owner, fmt.Sprintf("screenshotURLs[%d]", i), screenshot, urlcheck.UsageImage)
			}
		}

		if findings == 0 {
			fmt.Printf("%s\n", i18n.T("cmd.validate.clean"))
			return nil
		}

		fmt.Printf("\n%s\n", i18n.T("cmd.validate.findings", map[string]interface{}{"count": findings}))
		if validateStrict {
			return fmt.Errorf("%s", i18n.T("cmd.validate.errStrict", map[string]interface{}{"count": findings}))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat findings as errors")
}
