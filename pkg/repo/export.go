package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ipahub/ipahub-cli/pkg/models"
)

// DefaultPlaceholderIconURL substitutes for app entries without an icon so
// installer clients always have something to render.
const DefaultPlaceholderIconURL = "https://raw.githubusercontent.com/ipahub/assets/main/placeholder-icon.png"

// Exporter turns a repository draft into the public document.
type Exporter struct {
	placeholderIcon string
}

// NewExporter creates an exporter. An empty placeholder icon URL falls back
// to DefaultPlaceholderIconURL.
func NewExporter(placeholderIcon string) *Exporter {
	if placeholderIcon == "" {
		placeholderIcon = DefaultPlaceholderIconURL
	}
	return &Exporter{placeholderIcon: placeholderIcon}
}

// Build runs the filter/dedup engine over the draft's apps and sanitizes each
// surviving entry into the exportable shape: internal ID and compatibility
// status are dropped, a missing icon gets the placeholder, and blank
// screenshot URLs are pruned. The draft itself is left untouched.
func (e *Exporter) Build(r models.Repo, cfg models.ExportConfig) models.ExportedRepo {
	apps := FilterApps(r.Apps, cfg)

	out := models.ExportedRepo{
		Name:           r.Name,
		Subtitle:       r.Subtitle,
		Description:    r.Description,
		IconURL:        r.IconURL,
		HeaderImageURL: r.HeaderImageURL,
		Website:        r.Website,
		TintColor:      r.TintColor,
		Apps:           make([]models.ExportedApp, 0, len(apps)),
	}

	for _, app := range apps {
		out.Apps = append(out.Apps, e.sanitizeApp(app))
	}

	return out
}

func (e *Exporter) sanitizeApp(app models.AppItem) models.ExportedApp {
	iconURL := app.IconURL
	if strings.TrimSpace(iconURL) == "" {
		iconURL = e.placeholderIcon
	}

	screenshots := make([]string, 0, len(app.ScreenshotURLs))
	for _, url := range app.ScreenshotURLs {
		if strings.TrimSpace(url) != "" {
			screenshots = append(screenshots, url)
		}
	}

	return models.ExportedApp{
		Name:                 app.Name,
		BundleIdentifier:     app.BundleIdentifier,
		DeveloperName:        app.DeveloperName,
		Version:              app.Version,
		VersionDate:          app.VersionDate,
		VersionDescription:   app.VersionDescription,
		DownloadURL:          app.DownloadURL,
		LocalizedDescription: app.LocalizedDescription,
		IconURL:              iconURL,
		TintColor:            app.TintColor,
		Size:                 app.Size,
		Category:             app.Category,
		ScreenshotURLs:       screenshots,
	}
}

// WriteFile writes an export document to the given path, creating parent
// directories as needed.
func (e *Exporter) WriteFile(doc models.ExportedRepo, output string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal export document: %w", err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write export document: %w", err)
	}

	return nil
}
