package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/ipahub/ipahub-cli/pkg/urlcheck"
	"github.com/spf13/cobra"
)

var (
	addName          string
	addBundleID      string
	addDeveloper     string
	addVersion       string
	addVersionDate   string
	addChangelog     string
	addDescription   string
	addDownloadURL   string
	addIconURL       string
	addTintColor     string
	addSize          int64
	addCategory      string
	addScreenshots   []string
	addCompatibility string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an app entry to the draft",
	Long: `Add one app entry to the repository draft. The entry gets a freshly
generated stable id. URL fields are validated; findings are advisory warnings
and never block the addition.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		app := models.NewAppItem()
		app.Name = addName
		app.BundleIdentifier = addBundleID
		app.DeveloperName = addDeveloper
		app.Version = addVersion
		app.VersionDate = addVersionDate
		app.VersionDescription = addChangelog
		app.LocalizedDescription = addDescription
		app.DownloadURL = addDownloadURL
		app.IconURL = addIconURL
		app.TintColor = addTintColor
		app.Size = addSize
		if addCategory != "" {
			app.Category = addCategory
		}
		app.ScreenshotURLs = addScreenshots
		app.CompatibilityStatus = models.ParseCompatibilityStatus(addCompatibility)

		warnURL(app.DownloadURL, urlcheck.UsageFile, "downloadURL")
		warnURL(app.IconURL, urlcheck.UsageImage, "iconURL")
		for _, screenshot := range app.ScreenshotURLs {
			warnURL(screenshot, urlcheck.UsageImage, "screenshotURLs")
		}

		added, err := repository.AddApp(app)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("cmd.add.errAdd"), err)
		}

		fmt.Printf("%s\n", i18n.T("cmd.add.added", map[string]interface{}{
			"name": added.Name, "id": added.ID,
		}))
		return nil
	},
}

func warnURL(url string, usage urlcheck.Usage, field string) {
	if reason := urlcheck.Check(url, usage); reason != "" {
		fmt.Printf("  %s\n", i18n.T("warnURL", map[string]interface{}{
			"field": field, "reason": reason,
		}))
	}
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addName, "name", "", "app display name")
	addCmd.Flags().StringVar(&addBundleID, "bundle-id", "", "bundle identifier (reverse-DNS)")
	addCmd.Flags().StringVar(&addDeveloper, "developer", "", "developer name")
	addCmd.Flags().StringVar(&addVersion, "app-version", "", "app version string")
	addCmd.Flags().StringVar(&addVersionDate, "version-date", "", "version release date")
	addCmd.Flags().StringVar(&addChangelog, "changelog", "", "version description")
	addCmd.Flags().StringVar(&addDescription, "description", "", "localized description")
	addCmd.Flags().StringVar(&addDownloadURL, "download-url", "", "direct https download link")
	addCmd.Flags().StringVar(&addIconURL, "icon-url", "", "app icon URL")
	addCmd.Flags().StringVar(&addTintColor, "tint-color", "", "UI accent color")
	addCmd.Flags().Int64Var(&addSize, "size", 0, "package size in bytes")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category label")
	addCmd.Flags().StringSliceVar(&addScreenshots, "screenshot", []string{}, "screenshot URL (repeatable)")
	addCmd.Flags().StringVar(&addCompatibility, "compatibility", "", "compatibility status (safe, jit_required, trollstore_only, jailbreak_only)")
}
