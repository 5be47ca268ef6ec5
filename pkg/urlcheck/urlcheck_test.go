package urlcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAcceptable(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		usage Usage
	}{
		{"empty is fine", "", UsageFile},
		{"plain https file", "https://cdn.fastly.dev/app.ipa", UsageFile},
		{"github release asset", "https://github.com/vendor/app/releases/download/v1.0/app.ipa", UsageFile},
		{"raw githubusercontent", "https://raw.githubusercontent.com/vendor/app/main/icon.png", UsageImage},
		{"github page as website", "https://github.com/vendor/app", UsageWebsite},
		{"dropbox image", "https://dropbox.com/s/abc/icon.png", UsageImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Empty(t, Check(tt.url, tt.usage))
		})
	}
}

func TestCheckRejections(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		usage   Usage
		mention string
	}{
		{"http scheme", "http://cdn.fastly.dev/app.ipa", UsageFile, "https"},
		{"missing scheme", "cdn.fastly.dev/app.ipa", UsageFile, "https"},
		{"placeholder domain", "https://example.com/app.ipa", UsageFile, "placeholder"},
		{"placeholder image", "https://yourdomain.dev/icon.png", UsageImage, "placeholder"},
		{"localhost", "https://localhost/app.ipa", UsageFile, "localhost"},
		{"localhost with port", "https://localhost:8080/app.ipa", UsageFile, "localhost"},
		{"loopback ip", "https://127.0.0.1/app.ipa", UsageFile, "localhost"},
		{"no domain", "https://myserver/download", UsageFile, "domain"},
		{"github blob", "https://github.com/vendor/app/blob/main/app.ipa", UsageFile, "/raw/"},
		{"github tree page", "https://github.com/vendor/app/tree/main", UsageFile, "release asset"},
		{"dropbox share", "https://dropbox.com/s/abc/app.ipa", UsageFile, "Dropbox"},
		{"google drive", "https://drive.google.com/file/d/abc/view", UsageFile, "Drive"},
		{"mega", "https://mega.nz/file/abc", UsageFile, "MEGA"},
		{"archive details page", "https://archive.org/details/my-app", UsageFile, "download"},
		{"icloud share", "https://icloud.com/iclouddrive/abc", UsageFile, "iCloud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := Check(tt.url, tt.usage)
			require.NotEmpty(t, reason)
			require.True(t, strings.Contains(reason, tt.mention),
				"reason %q should mention %q", reason, tt.mention)
		})
	}
}

func TestCheckFileRulesOnlyApplyToFiles(t *testing.T) {
	blob := "https://github.com/vendor/app/blob/main/icon.png"
	require.NotEmpty(t, Check(blob, UsageFile))
	require.Empty(t, Check(blob, UsageImage))
	require.Empty(t, Check(blob, UsageWebsite))
}

func TestUsageString(t *testing.T) {
	require.Equal(t, "image", UsageImage.String())
	require.Equal(t, "file", UsageFile.String())
	require.Equal(t, "website", UsageWebsite.String())
	require.Equal(t, "unknown", Usage(42).String())
}
