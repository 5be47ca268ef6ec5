package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipahub/ipahub-cli/internal/errors"
	"github.com/ipahub/ipahub-cli/pkg/models"
)

func TestNormalizeOwnSchema(t *testing.T) {
	doc := `{
		"name": "My Repo",
		"subtitle": "Apps",
		"iconURL": "https://cdn.host.dev/icon.png",
		"apps": [
			{
				"name": "Alpha",
				"bundleIdentifier": "com.example.alpha",
				"version": "1.2",
				"downloadURL": "https://cdn.host.dev/alpha.ipa",
				"size": 1024,
				"screenshotURLs": ["https://cdn.host.dev/s1.png"]
			}
		]
	}`

	repo, err := Normalize([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "My Repo", repo.Name)
	require.Equal(t, "Apps", repo.Subtitle)
	require.Equal(t, "https://cdn.host.dev/icon.png", repo.IconURL)
	require.Len(t, repo.Apps, 1)

	app := repo.Apps[0]
	require.Equal(t, "Alpha", app.Name)
	require.Equal(t, "com.example.alpha", app.BundleIdentifier)
	require.Equal(t, int64(1024), app.Size)
	require.NotEmpty(t, app.ID)
}

func TestNormalizeSourceWrapped(t *testing.T) {
	doc := `{
		"source": {
			"name": "Wrapped Repo",
			"apps": [
				{"bundleID": "com.example.x", "name": "X", "developer": "Someone"}
			]
		}
	}`

	repo, err := Normalize([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "Wrapped Repo", repo.Name)
	require.Len(t, repo.Apps, 1)
	require.Equal(t, "com.example.x", repo.Apps[0].BundleIdentifier)
	require.Equal(t, "Someone", repo.Apps[0].DeveloperName)
	require.NotEmpty(t, repo.Apps[0].ID)
}

func TestNormalizeSynonymKeys(t *testing.T) {
	doc := `{
		"name": "Synonyms",
		"icon": "https://cdn.host.dev/icon.png",
		"headerImage": "https://cdn.host.dev/header.png",
		"packages": [
			{
				"name": "P",
				"identifier": "com.example.p",
				"changelog": "fixed",
				"download": "https://cdn.host.dev/p.ipa",
				"description": "a package",
				"screenshots": ["https://cdn.host.dev/shot.png"]
			}
		]
	}`

	repo, err := Normalize([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.host.dev/icon.png", repo.IconURL)
	require.Equal(t, "https://cdn.host.dev/header.png", repo.HeaderImageURL)
	require.Len(t, repo.Apps, 1)

	app := repo.Apps[0]
	require.Equal(t, "com.example.p", app.BundleIdentifier)
	require.Equal(t, "fixed", app.VersionDescription)
	require.Equal(t, "https://cdn.host.dev/p.ipa", app.DownloadURL)
	require.Equal(t, "a package", app.LocalizedDescription)
	require.Equal(t, []string{"https://cdn.host.dev/shot.png"}, app.ScreenshotURLs)
}

func TestNormalizeDefaults(t *testing.T) {
	repo, err := Normalize([]byte(`{"apps": [{"name": "Bare"}]}`))
	require.NoError(t, err)

	// Missing repo name falls back to the default shape.
	require.Equal(t, "My Repository", repo.Name)

	app := repo.Apps[0]
	require.Equal(t, models.DefaultCategory, app.Category)
	require.Equal(t, models.CompatibilityUnknown, app.CompatibilityStatus)
	require.NotNil(t, app.ScreenshotURLs)
	require.Empty(t, app.ScreenshotURLs)
}

func TestNormalizeCoercion(t *testing.T) {
	doc := `{
		"apps": [
			{"name": "A", "size": "2048", "screenshotURLs": "not-an-array"},
			{"name": "B", "size": "12kb"},
			"not-an-object"
		]
	}`

	repo, err := Normalize([]byte(doc))
	require.NoError(t, err)
	require.Len(t, repo.Apps, 2, "non-object entries are skipped")
	require.Equal(t, int64(2048), repo.Apps[0].Size)
	require.Empty(t, repo.Apps[0].ScreenshotURLs)
	require.Zero(t, repo.Apps[1].Size)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{not json`},
		{"array root", `[{"name": "A"}]`},
		{"scalar root", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.input))
			require.Error(t, err)

			var ipaErr *errors.IpaHubError
			require.True(t, errors.AsIpaHubError(err, &ipaErr))
			require.Equal(t, errors.ErrorTypeParsing, ipaErr.Type)
			require.Equal(t, "MALFORMED_INPUT", ipaErr.Code)
		})
	}
}

func TestNormalizeMalformedInputCarriesSnippet(t *testing.T) {
	_, err := Normalize([]byte(`{broken`))
	require.Error(t, err)

	var ipaErr *errors.IpaHubError
	require.True(t, errors.AsIpaHubError(err, &ipaErr))
	require.Contains(t, ipaErr.Context["input"], "{broken")
}

func TestAppsFromUntrusted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"bare array", `[{"name": "A"}, {"name": "B"}]`, 2},
		{"object with apps", `{"apps": [{"name": "A"}]}`, 1},
		{"object with packages", `{"packages": [{"name": "A"}, {"name": "B"}]}`, 2},
		{"single object", `{"name": "Solo", "bundleIdentifier": "com.example.solo"}`, 1},
		{"array with junk entries", `[{"name": "A"}, 42, "x"]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps, err := AppsFromUntrusted([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, apps, tt.count)
			for _, app := range apps {
				require.NotEmpty(t, app.ID)
			}
		})
	}
}

func TestAppsFromUntrustedScalarRoot(t *testing.T) {
	_, err := AppsFromUntrusted([]byte(`42`))
	require.Error(t, err)
}
