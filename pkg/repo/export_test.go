package repo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipahub/ipahub-cli/pkg/models"
)

func TestExporterBuildSanitizes(t *testing.T) {
	draft := models.Repo{
		Name: "Test Repo",
		Apps: []models.AppItem{
			{
				ID:                  "internal-id",
				Name:                "Alpha",
				BundleIdentifier:    "com.example.alpha",
				Version:             "1.0",
				IconURL:             "  ",
				ScreenshotURLs:      []string{"", "  ", "https://cdn.example.dev/shot1.png"},
				CompatibilityStatus: models.CompatibilitySafe,
			},
		},
	}

	doc := NewExporter("").Build(draft, models.ExportConfig{})

	require.Equal(t, "Test Repo", doc.Name)
	require.Len(t, doc.Apps, 1)
	require.Equal(t, DefaultPlaceholderIconURL, doc.Apps[0].IconURL)
	require.Equal(t, []string{"https://cdn.example.dev/shot1.png"}, doc.Apps[0].ScreenshotURLs)
}

func TestExporterBuildCustomPlaceholder(t *testing.T) {
	draft := models.Repo{
		Apps: []models.AppItem{{ID: "1", Name: "Alpha"}},
	}

	doc := NewExporter("https://cdn.example.dev/icon.png").Build(draft, models.ExportConfig{})

	require.Equal(t, "https://cdn.example.dev/icon.png", doc.Apps[0].IconURL)
}

func TestExporterBuildDropsInternalFields(t *testing.T) {
	draft := models.Repo{
		Name: "Test Repo",
		Apps: []models.AppItem{
			{
				ID:                  "internal-id",
				Name:                "Alpha",
				CompatibilityStatus: models.CompatibilityJailbreakOnly,
			},
		},
	}

	doc := NewExporter("").Build(draft, models.ExportConfig{})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NotContains(t, string(data), "internal-id")
	require.NotContains(t, string(data), "compatibilityStatus")
	require.NotContains(t, string(data), `"id"`)
}

func TestExporterBuildLeavesDraftUntouched(t *testing.T) {
	draft := models.Repo{
		Apps: []models.AppItem{
			{ID: "1", Name: "Alpha", ScreenshotURLs: []string{"", "https://cdn.example.dev/a.png"}},
		},
	}

	_ = NewExporter("").Build(draft, models.ExportConfig{})

	require.Empty(t, draft.Apps[0].IconURL)
	require.Equal(t, []string{"", "https://cdn.example.dev/a.png"}, draft.Apps[0].ScreenshotURLs)
}

func TestExporterWriteFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "nested", "repo.json")

	doc := models.ExportedRepo{Name: "Test Repo", Apps: []models.ExportedApp{}}

	exporter := NewExporter("")
	require.NoError(t, exporter.WriteFile(doc, output, true))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, "Test Repo", parsed["name"])
}
