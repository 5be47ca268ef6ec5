package repo

import (
	"strings"

	"github.com/ipahub/ipahub-cli/pkg/models"
)

// incompatibleKeywords signal jailbreak/TrollStore/root/JIT requirements in
// free-form metadata text. Matching is a literal case-folded substring scan
// with no stemming or negation handling.
var incompatibleKeywords = []string{
	"jailbreak only",
	"jailbroken only",
	"jailbreak required",
	"requires jailbreak",
	"needs jailbreak",
	"trollstore only",
	"trollstore required",
	"requires trollstore",
	"root required",
	"requires root",
	"root access",
	"unsandboxed",
	"jit required",
	"requires jit",
	"jit only",
	"needs jit",
}

// FilterApps produces the subset of apps that would be exported under the
// given config: a compatibility filter followed by deduplication by identity.
// The input slice is never mutated. With both switches off the input is
// returned unchanged, exact duplicates and all.
func FilterApps(apps []models.AppItem, cfg models.ExportConfig) []models.AppItem {
	if !cfg.Deduplicate && !cfg.FilterIncompatible {
		return apps
	}

	filtered := apps
	if cfg.FilterIncompatible {
		filtered = make([]models.AppItem, 0, len(apps))
		for _, app := range apps {
			if isCompatible(app) {
				filtered = append(filtered, app)
			}
		}
	}

	if !cfg.Deduplicate {
		return filtered
	}

	return dedupeApps(filtered)
}

// isCompatible decides whether an app survives the compatibility filter.
// An explicit status other than unknown always wins: safe keeps the app,
// any restricted status excludes it, and the keyword scan is skipped
// entirely. Only apps without an explicit status fall through to the
// heuristic text match.
func isCompatible(app models.AppItem) bool {
	switch app.CompatibilityStatus {
	case models.CompatibilitySafe:
		return true
	case models.CompatibilityJailbreakOnly, models.CompatibilityTrollStoreOnly, models.CompatibilityJITRequired:
		return false
	}

	haystack := strings.ToLower(app.Name + " " + app.LocalizedDescription + " " + app.VersionDescription + " " + app.Category)
	for _, keyword := range incompatibleKeywords {
		if strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}

// dedupeApps retains one entry per identity key: the highest version wins,
// and an exact version tie keeps the later-encountered entry. Each group
// occupies the output position where its first member appeared.
func dedupeApps(apps []models.AppItem) []models.AppItem {
	winners := make([]models.AppItem, 0, len(apps))
	position := make(map[string]int, len(apps))

	for _, app := range apps {
		key := app.DedupKey()
		i, seen := position[key]
		if !seen {
			position[key] = len(winners)
			winners = append(winners, app)
			continue
		}
		if CompareVersions(app.Version, winners[i].Version) >= 0 {
			winners[i] = app
		}
	}

	return winners
}
