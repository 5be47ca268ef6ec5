package models

import (
	"strings"

	"github.com/google/uuid"
)

// CompatibilityStatus classifies what special device capability an app needs
// beyond a standard sideload install.
type CompatibilityStatus string

const (
	CompatibilityUnknown        CompatibilityStatus = "unknown"
	CompatibilitySafe           CompatibilityStatus = "safe"
	CompatibilityJITRequired    CompatibilityStatus = "jit_required"
	CompatibilityTrollStoreOnly CompatibilityStatus = "trollstore_only"
	CompatibilityJailbreakOnly  CompatibilityStatus = "jailbreak_only"
)

// ParseCompatibilityStatus maps a free-form string to a known status.
// Anything unrecognized (including empty input) is CompatibilityUnknown.
func ParseCompatibilityStatus(s string) CompatibilityStatus {
	switch CompatibilityStatus(strings.ToLower(strings.TrimSpace(s))) {
	case CompatibilitySafe:
		return CompatibilitySafe
	case CompatibilityJITRequired:
		return CompatibilityJITRequired
	case CompatibilityTrollStoreOnly:
		return CompatibilityTrollStoreOnly
	case CompatibilityJailbreakOnly:
		return CompatibilityJailbreakOnly
	default:
		return CompatibilityUnknown
	}
}

// DefaultCategory is used when an app entry carries no category label.
const DefaultCategory = "Utilities"

// AppItem represents one distributable application entry in a repository draft.
// The ID is internal addressing only and never appears in exported documents.
type AppItem struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	BundleIdentifier     string              `json:"bundleIdentifier"`
	DeveloperName        string              `json:"developerName"`
	Version              string              `json:"version"`
	VersionDate          string              `json:"versionDate"`
	VersionDescription   string              `json:"versionDescription"`
	DownloadURL          string              `json:"downloadURL"`
	LocalizedDescription string              `json:"localizedDescription"`
	IconURL              string              `json:"iconURL"`
	TintColor            string              `json:"tintColor,omitempty"`
	Size                 int64               `json:"size,omitempty"`
	Category             string              `json:"category,omitempty"`
	ScreenshotURLs       []string            `json:"screenshotURLs"`
	CompatibilityStatus  CompatibilityStatus `json:"compatibilityStatus,omitempty"`
}

// NewAppItem creates an empty app entry with a freshly generated stable ID.
func NewAppItem() AppItem {
	return AppItem{
		ID:                  uuid.NewString(),
		Category:            DefaultCategory,
		CompatibilityStatus: CompatibilityUnknown,
	}
}

// EnsureID assigns a fresh ID when the entry has none.
func (a *AppItem) EnsureID() {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
}

// DedupKey derives the identity key used by the deduplication pass.
// A bundle identifier containing a dot wins; otherwise the normalized name;
// entries with neither get a per-entry key from their own ID so they never
// collide with each other.
func (a AppItem) DedupKey() string {
	bid := strings.ToLower(strings.TrimSpace(a.BundleIdentifier))
	if bid != "" && strings.Contains(bid, ".") {
		return "bid:" + bid
	}
	name := strings.ToLower(strings.TrimSpace(a.Name))
	if name != "" {
		return "name:" + name
	}
	return "id:" + a.ID
}
