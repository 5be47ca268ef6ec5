// Package client manages the registry of named remote sources a workspace
// can import from.
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceFormat names the ingestion mode used for a source.
type SourceFormat string

const (
	FormatJSON SourceFormat = "json"
	FormatAPT  SourceFormat = "apt"
)

// Source represents one named remote repository.
type Source struct {
	Name        string       `yaml:"name"`
	URL         string       `yaml:"url"`
	Format      SourceFormat `yaml:"format"`
	LastFetched time.Time    `yaml:"last_fetched,omitempty"`
}

// Registry is the persisted collection of sources.
type Registry struct {
	Sources map[string]*Source `yaml:"sources"`

	path string
}

// RegistryPath returns the registry file path for a workspace root.
func RegistryPath(rootDir string) string {
	return filepath.Join(rootDir, ".ipahub", "sources.yaml")
}

// LoadRegistry loads the registry for a workspace, returning an empty one
// when no file exists yet.
func LoadRegistry(rootDir string) (*Registry, error) {
	registry := &Registry{
		Sources: make(map[string]*Source),
		path:    RegistryPath(rootDir),
	}

	data, err := os.ReadFile(registry.path)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to read sources registry: %w", err)
	}

	if err := yaml.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("failed to parse sources registry: %w", err)
	}
	if registry.Sources == nil {
		registry.Sources = make(map[string]*Source)
	}

	return registry, nil
}

// Save writes the registry back to its workspace file.
func (r *Registry) Save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal sources registry: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sources registry: %w", err)
	}

	return nil
}

// Add registers a new source under a unique name.
func (r *Registry) Add(name, url string, format SourceFormat) error {
	if _, exists := r.Sources[name]; exists {
		return fmt.Errorf("source %s already exists", name)
	}
	if format != FormatJSON && format != FormatAPT {
		return fmt.Errorf("unsupported source format %s", format)
	}

	r.Sources[name] = &Source{Name: name, URL: url, Format: format}
	return r.Save()
}

// Remove deletes a source by name.
func (r *Registry) Remove(name string) error {
	if _, exists := r.Sources[name]; !exists {
		return fmt.Errorf("source %s not found", name)
	}
	delete(r.Sources, name)
	return r.Save()
}

// Get returns a source by name.
func (r *Registry) Get(name string) (*Source, error) {
	source, exists := r.Sources[name]
	if !exists {
		return nil, fmt.Errorf("source %s not found", name)
	}
	return source, nil
}

// MarkFetched records a successful fetch time for a source.
func (r *Registry) MarkFetched(name string) error {
	source, err := r.Get(name)
	if err != nil {
		return err
	}
	source.LastFetched = time.Now()
	return r.Save()
}

// List returns the sources sorted by name.
func (r *Registry) List() []*Source {
	names := make([]string, 0, len(r.Sources))
	for name := range r.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	sources := make([]*Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, r.Sources[name])
	}
	return sources
}
