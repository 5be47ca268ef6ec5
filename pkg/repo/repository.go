package repo

import (
	"fmt"
	"path/filepath"

	"github.com/ipahub/ipahub-cli/pkg/models"
	"github.com/ipahub/ipahub-cli/pkg/store"
)

// Repository manages the repository draft workspace: the persisted draft
// Repo, the optional device profile, and the export pipeline over them.
type Repository struct {
	store   *store.Store
	config  *models.Config
	rootDir string
}

// NewRepository creates a repository instance rooted at the given directory.
func NewRepository(rootDir string, config *models.Config) (*Repository, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	return &Repository{
		store:   store.New(filepath.Join(absRoot, ".ipahub")),
		config:  config,
		rootDir: absRoot,
	}, nil
}

// Initialize writes an empty draft seeded from the configured defaults,
// unless one already exists.
func (r *Repository) Initialize() error {
	var existing models.Repo
	found, err := r.store.Load(store.KeyRepoDraft, &existing)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	draft := models.DefaultRepo()
	if r.config != nil {
		if r.config.Repository.Name != "" {
			draft.Name = r.config.Repository.Name
		}
		draft.Subtitle = r.config.Repository.Subtitle
		draft.Website = r.config.Repository.Website
	}

	return r.SaveDraft(draft)
}

// LoadDraft returns the persisted draft, or the default shape when the
// workspace has none yet.
func (r *Repository) LoadDraft() (models.Repo, error) {
	draft := models.DefaultRepo()
	if _, err := r.store.Load(store.KeyRepoDraft, &draft); err != nil {
		return models.Repo{}, err
	}
	if draft.Apps == nil {
		draft.Apps = []models.AppItem{}
	}
	return draft, nil
}

// SaveDraft persists the draft wholesale.
func (r *Repository) SaveDraft(draft models.Repo) error {
	return r.store.Save(store.KeyRepoDraft, draft)
}

// AddApp appends the entry to the draft, assigning a fresh ID when absent.
func (r *Repository) AddApp(app models.AppItem) (models.AppItem, error) {
	draft, err := r.LoadDraft()
	if err != nil {
		return models.AppItem{}, err
	}

	app.EnsureID()
	draft.Apps = append(draft.Apps, app)

	if err := r.SaveDraft(draft); err != nil {
		return models.AppItem{}, err
	}
	return app, nil
}

// UpdateApp replaces the draft entry with the same ID.
func (r *Repository) UpdateApp(app models.AppItem) error {
	draft, err := r.LoadDraft()
	if err != nil {
		return err
	}

	if !draft.ReplaceApp(app) {
		return fmt.Errorf("no app with id %s", app.ID)
	}

	return r.SaveDraft(draft)
}

// RemoveApp removes a draft entry by ID, or by exact bundle identifier when
// no ID matches. It reports how many entries were removed.
func (r *Repository) RemoveApp(idOrBundleID string) (int, error) {
	draft, err := r.LoadDraft()
	if err != nil {
		return 0, err
	}

	if draft.RemoveApp(idOrBundleID) {
		return 1, r.SaveDraft(draft)
	}

	kept := make([]models.AppItem, 0, len(draft.Apps))
	removed := 0
	for _, app := range draft.Apps {
		if app.BundleIdentifier == idOrBundleID {
			removed++
			continue
		}
		kept = append(kept, app)
	}
	if removed == 0 {
		return 0, fmt.Errorf("no app with id or bundle identifier %s", idOrBundleID)
	}

	draft.Apps = kept
	return removed, r.SaveDraft(draft)
}

// MergeApps merges ingested entries into the draft: entries whose ID already
// exists replace in place, the rest are appended in order.
func (r *Repository) MergeApps(apps []models.AppItem) error {
	draft, err := r.LoadDraft()
	if err != nil {
		return err
	}

	for _, app := range apps {
		app.EnsureID()
		if !draft.ReplaceApp(app) {
			draft.Apps = append(draft.Apps, app)
		}
	}

	return r.SaveDraft(draft)
}

// LoadDeviceProfile returns the stored device profile, if any.
func (r *Repository) LoadDeviceProfile() (models.DeviceProfile, bool, error) {
	var profile models.DeviceProfile
	found, err := r.store.Load(store.KeyDeviceProfile, &profile)
	return profile, found, err
}

// SaveDeviceProfile persists the device profile.
func (r *Repository) SaveDeviceProfile(profile models.DeviceProfile) error {
	return r.store.Save(store.KeyDeviceProfile, profile)
}

// Exporter returns the export serializer configured for this workspace.
func (r *Repository) Exporter() *Exporter {
	placeholder := ""
	if r.config != nil {
		placeholder = r.config.Repository.PlaceholderIconURL
	}
	return NewExporter(placeholder)
}

// GetRootDir returns the workspace root directory.
func (r *Repository) GetRootDir() string {
	return r.rootDir
}
