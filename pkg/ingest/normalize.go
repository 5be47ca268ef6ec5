// Package ingest normalizes heterogeneous repository documents into the
// internal entity model. Input is treated as untrusted: every field is
// projected explicitly with type coercion and defaulting, never cast.
package ingest

import (
	"encoding/json"
	"strings"

	"github.com/ipahub/ipahub-cli/internal/errors"
	"github.com/ipahub/ipahub-cli/pkg/models"
)

// Normalize maps a parsed JSON document (own schema, synonym keys, or a
// one-level "source"-wrapped variant) into a complete Repo. It fails only
// when the document cannot be parsed or its root is not an object; missing
// fields fall back to the default Repo/AppItem shape.
func Normalize(data []byte) (*models.Repo, error) {
	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.NewMalformedInputError("failed to parse JSON document", snippet(data))
	}

	root, ok := parsed.(map[string]interface{})
	if !ok {
		return nil, errors.NewMalformedInputError("document root is not an object", snippet(data))
	}

	// Unwrap a nested source object once. A map type assertion excludes the
	// array case by construction.
	if src, ok := root["source"].(map[string]interface{}); ok {
		root = src
	}

	repo := models.DefaultRepo()
	if v := stringField(root, "name"); v != "" {
		repo.Name = v
	}
	repo.Subtitle = stringField(root, "subtitle")
	repo.Description = stringField(root, "description")
	repo.IconURL = stringField(root, "iconURL", "icon")
	repo.HeaderImageURL = stringField(root, "headerImageURL", "headerImage")
	repo.Website = stringField(root, "website")
	repo.TintColor = stringField(root, "tintColor")

	entries, ok := root["apps"].([]interface{})
	if !ok {
		entries, _ = root["packages"].([]interface{})
	}

	for _, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		repo.Apps = append(repo.Apps, appFromObject(obj))
	}

	return &repo, nil
}

// AppsFromUntrusted coerces an arbitrary untrusted JSON value into app
// entries. It accepts a bare array of app objects, an object carrying an
// apps/packages array, or a single app object. This is the defensive
// boundary for externally generated metadata.
func AppsFromUntrusted(data []byte) ([]models.AppItem, error) {
	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.NewMalformedInputError("failed to parse JSON document", snippet(data))
	}

	switch value := parsed.(type) {
	case []interface{}:
		apps := make([]models.AppItem, 0, len(value))
		for _, entry := range value {
			if obj, ok := entry.(map[string]interface{}); ok {
				apps = append(apps, appFromObject(obj))
			}
		}
		return apps, nil
	case map[string]interface{}:
		if entries, ok := value["apps"].([]interface{}); ok {
			return appsFromEntries(entries), nil
		}
		if entries, ok := value["packages"].([]interface{}); ok {
			return appsFromEntries(entries), nil
		}
		return []models.AppItem{appFromObject(value)}, nil
	default:
		return nil, errors.NewMalformedInputError("document is neither an object nor an array", snippet(data))
	}
}

func appsFromEntries(entries []interface{}) []models.AppItem {
	apps := make([]models.AppItem, 0, len(entries))
	for _, entry := range entries {
		if obj, ok := entry.(map[string]interface{}); ok {
			apps = append(apps, appFromObject(obj))
		}
	}
	return apps
}

// appFromObject projects one untyped entry into an AppItem, trying the own
// schema key first and known synonyms from other schemas after it.
func appFromObject(obj map[string]interface{}) models.AppItem {
	app := models.AppItem{
		ID:                   stringField(obj, "id"),
		Name:                 stringField(obj, "name"),
		BundleIdentifier:     stringField(obj, "bundleIdentifier", "bundleID", "identifier"),
		DeveloperName:        stringField(obj, "developerName", "developer"),
		Version:              stringField(obj, "version"),
		VersionDate:          stringField(obj, "versionDate"),
		VersionDescription:   stringField(obj, "versionDescription", "changelog"),
		DownloadURL:          stringField(obj, "downloadURL", "download"),
		LocalizedDescription: stringField(obj, "localizedDescription", "description"),
		IconURL:              stringField(obj, "iconURL", "icon"),
		TintColor:            stringField(obj, "tintColor"),
		Size:                 int64Field(obj, "size"),
		Category:             stringField(obj, "category"),
		ScreenshotURLs:       stringSliceField(obj, "screenshotURLs", "screenshots"),
		CompatibilityStatus:  models.ParseCompatibilityStatus(stringField(obj, "compatibilityStatus")),
	}

	if app.Category == "" {
		app.Category = models.DefaultCategory
	}
	app.EnsureID()

	return app
}

// stringField returns the first present key coerced to a string.
func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key].(string); ok {
			return v
		}
	}
	return ""
}

// int64Field coerces a numeric field, tolerating JSON numbers and numeric
// strings. Anything else is zero.
func int64Field(obj map[string]interface{}, key string) int64 {
	switch v := obj[key].(type) {
	case float64:
		return int64(v)
	case string:
		var n int64
		for _, r := range v {
			if r < '0' || r > '9' {
				return 0
			}
			n = n*10 + int64(r-'0')
		}
		return n
	default:
		return 0
	}
}

// stringSliceField coerces an array field to its string members. A missing
// or non-array value yields an empty list.
func stringSliceField(obj map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		raw, ok := obj[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

// snippet returns a short prefix of the offending input for diagnostics.
func snippet(data []byte) string {
	text := strings.TrimSpace(string(data))
	if len(text) > 120 {
		text = text[:120] + "…"
	}
	return text
}
