package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/ipahub/ipahub-cli/pkg/urlcheck"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update draft repository metadata",
	Long: `Update repository-level metadata on the draft. Only flags that were
explicitly provided are applied, so empty values can be set deliberately.`,
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

		changed := 0
		apply := func(flag string, target *string) {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				*target = value
				changed++
			}
		}

		apply("name", &draft.Name)
		apply("subtitle", &draft.Subtitle)
		apply("description", &draft.Description)
		apply("icon-url", &draft.IconURL)
		apply("header-url", &draft.HeaderImageURL)
		apply("website", &draft.Website)
		apply("tint-color", &draft.TintColor)

		if changed == 0 {
			return fmt.Errorf("%s", i18n.T("cmd.set.errNoFlags"))
		}

		warnURL(draft.IconURL, urlcheck.UsageImage, "iconURL")
		warnURL(draft.HeaderImageURL, urlcheck.UsageImage, "headerImageURL")
		warnURL(draft.Website, urlcheck.UsageWebsite, "website")

		if err := repository.SaveDraft(draft); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errSaveDraft"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.set.updated", map[string]interface{}{"count": changed}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().String("name", "", "repository name")
	setCmd.Flags().String("subtitle", "", "repository subtitle")
	setCmd.Flags().String("description", "", "repository description")
	setCmd.Flags().String("icon-url", "", "repository icon URL")
	setCmd.Flags().String("header-url", "", "header image URL")
	setCmd.Flags().String("website", "", "repository website")
	setCmd.Flags().String("tint-color", "", "UI accent color")
}
