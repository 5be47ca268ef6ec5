package cmd

import "github.com/ipahub/ipahub-cli/internal/i18n"

// applyCommandLocalization updates command and flag descriptions after i18n is initialized.
func applyCommandLocalization() {
	// Root command metadata and flags.
	rootCmd.Short = i18n.T("cmd.root.short")
	rootCmd.Long = i18n.T("cmd.root.long")

	if flag := rootCmd.PersistentFlags().Lookup("config"); flag != nil {
		flag.Usage = i18n.T("flags.config")
	}
	if flag := rootCmd.PersistentFlags().Lookup("work-dir"); flag != nil {
		flag.Usage = i18n.T("flags.workDir")
	}
	if flag := rootCmd.PersistentFlags().Lookup("verbose"); flag != nil {
		flag.Usage = i18n.T("flags.verbose")
	}
	if flag := rootCmd.PersistentFlags().Lookup("no-color"); flag != nil {
		flag.Usage = i18n.T("flags.noColor")
	}
	if flag := rootCmd.PersistentFlags().Lookup("lang"); flag != nil {
		flag.Usage = i18n.T("flags.lang")
	}

	// Command descriptions.
	initCmd.Short = i18n.T("cmd.init.short")
	addCmd.Short = i18n.T("cmd.add.short")
	listCmd.Short = i18n.T("cmd.list.short")
	removeCmd.Short = i18n.T("cmd.remove.short")
	setCmd.Short = i18n.T("cmd.set.short")
	exportCmd.Short = i18n.T("cmd.export.short")
	importCmd.Short = i18n.T("cmd.import.short")
	sourcesCmd.Short = i18n.T("cmd.sources.short")
	validateCmd.Short = i18n.T("cmd.validate.short")
	publishCmd.Short = i18n.T("cmd.publish.short")
	deviceCmd.Short = i18n.T("cmd.device.short")
	versionCmd.Short = i18n.T("cmd.version.short")
}
