package cmd

import (
	"fmt"

	"github.com/ipahub/ipahub-cli/internal/config"
	"github.com/ipahub/ipahub-cli/internal/i18n"
	"github.com/ipahub/ipahub-cli/pkg/repo"
	"github.com/spf13/cobra"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show or update the target device profile",
	Long: `Show or update the device profile stored with the draft. The profile is
informational metadata describing the device the repository is assembled for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadConfig"), err)
		}

		repository, err := repo.NewRepository(workDir, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errCreateRepo"), err)
		}

		profile, found, err := repository.LoadDeviceProfile()
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T("errLoadDraft"), err)
		}

		changed := false
		apply := func(flag string, target *string) {
			if cmd.Flags().Changed(flag) {
				value, _ := cmd.Flags().GetString(flag)
				*target = value
				changed = true
			}
		}
		apply("name", &profile.Name)
		apply("model", &profile.Model)
		apply("os-version", &profile.OSVersion)

		if changed {
			if err := repository.SaveDeviceProfile(profile); err != nil {
				return fmt.Errorf("%s: %w", i18n.T("errSaveDraft"), err)
			}
			fmt.Printf("%s\n", i18n.T("cmd.device.updated"))
			return nil
		}

		if !found {
			fmt.Printf("%s\n", i18n.T("cmd.device.none"))
			return nil
		}

		fmt.Printf("%s: %s\n", i18n.T("cmd.device.name"), profile.Name)
		fmt.Printf("%s: %s\n", i18n.T("cmd.device.model"), profile.Model)
		fmt.Printf("%s: %s\n", i18n.T("cmd.device.osVersion"), profile.OSVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceCmd)

	deviceCmd.Flags().String("name", "", "device display name")
	deviceCmd.Flags().String("model", "", "device model identifier")
	deviceCmd.Flags().String("os-version", "", "device OS version")
}
