package models

// Repo is the mutable repository draft: display metadata plus the ordered app
// collection. Insertion order is the canonical display order.
type Repo struct {
	Name           string    `json:"name"`
	Subtitle       string    `json:"subtitle"`
	Description    string    `json:"description"`
	IconURL        string    `json:"iconURL"`
	HeaderImageURL string    `json:"headerImageURL"`
	Website        string    `json:"website"`
	TintColor      string    `json:"tintColor"`
	Apps           []AppItem `json:"apps"`
}

// DefaultRepo returns the empty draft shape used when nothing is persisted yet
// and as the defaulting base during ingestion.
func DefaultRepo() Repo {
	return Repo{
		Name: "My Repository",
		Apps: []AppItem{},
	}
}

// FindApp returns the index of the app with the given ID, or -1.
func (r Repo) FindApp(id string) int {
	for i, app := range r.Apps {
		if app.ID == id {
			return i
		}
	}
	return -1
}

// ReplaceApp swaps the entry whose ID matches, returning false when absent.
func (r *Repo) ReplaceApp(app AppItem) bool {
	if i := r.FindApp(app.ID); i >= 0 {
		r.Apps[i] = app
		return true
	}
	return false
}

// RemoveApp filters out the entry with the given ID, returning false when absent.
func (r *Repo) RemoveApp(id string) bool {
	i := r.FindApp(id)
	if i < 0 {
		return false
	}
	r.Apps = append(r.Apps[:i], r.Apps[i+1:]...)
	return true
}

// ExportConfig controls the export pipeline. Constructed fresh per export call.
type ExportConfig struct {
	Deduplicate        bool
	FilterIncompatible bool
}

// ExportedApp is one app entry in the public document. It deliberately has no
// ID or compatibility status field.
type ExportedApp struct {
	Name                 string   `json:"name"`
	BundleIdentifier     string   `json:"bundleIdentifier"`
	DeveloperName        string   `json:"developerName"`
	Version              string   `json:"version"`
	VersionDate          string   `json:"versionDate"`
	VersionDescription   string   `json:"versionDescription"`
	DownloadURL          string   `json:"downloadURL"`
	LocalizedDescription string   `json:"localizedDescription"`
	IconURL              string   `json:"iconURL"`
	TintColor            string   `json:"tintColor,omitempty"`
	Size                 int64    `json:"size,omitempty"`
	Category             string   `json:"category,omitempty"`
	ScreenshotURLs       []string `json:"screenshotURLs"`
}

// ExportedRepo is the final exportable document consumed by installer clients.
type ExportedRepo struct {
	Name           string        `json:"name"`
	Subtitle       string        `json:"subtitle"`
	Description    string        `json:"description"`
	IconURL        string        `json:"iconURL"`
	HeaderImageURL string        `json:"headerImageURL"`
	Website        string        `json:"website"`
	TintColor      string        `json:"tintColor"`
	Apps           []ExportedApp `json:"apps"`
}

// DeviceProfile describes the target device a repository draft is being
// assembled for. It is stored alongside the draft and otherwise passive.
type DeviceProfile struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	OSVersion string `json:"osVersion"`
}
