package ingest

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/ipahub/ipahub-cli/internal/errors"
	"github.com/ipahub/ipahub-cli/pkg/models"
)

// Fallbacks used when a package block omits an optional field.
const (
	aptFallbackVersion   = "1.0"
	aptFallbackDeveloper = "Unknown"
)

// APTSource ingests Debian-control-format package indexes (Cydia/APT style
// repositories) from a base repository URL.
type APTSource struct {
	client *Client
}

// NewAPTSource creates an APT ingester using the given HTTP client.
func NewAPTSource(client *Client) *APTSource {
	return &APTSource{client: client}
}

// Fetch retrieves and normalizes a repository: the optional Release metadata
// first, then the Packages index, falling back to Packages.gz when the plain
// index is unavailable. It either returns a complete Repo or an error; no
// partial result is ever produced.
func (s *APTSource) Fetch(ctx context.Context, baseURL string) (*models.Repo, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, errors.NewValidationError("BAD_BASE_URL",
			fmt.Sprintf("invalid repository URL %q", baseURL))
	}

	repo := models.DefaultRepo()

	// Release is purely supplementary; its absence is tolerated.
	if releaseData, err := s.client.Get(ctx, base.JoinPath("Release").String()); err == nil {
		applyRelease(&repo, parseControlFields(string(releaseData)))
	}

	index, err := s.fetchPackagesIndex(ctx, base)
	if err != nil {
		return nil, err
	}

	for _, block := range parseControlBlocks(index) {
		app, ok := appFromControlBlock(block, base)
		if !ok {
			continue
		}
		repo.Apps = append(repo.Apps, app)
	}

	if len(repo.Apps) == 0 {
		return nil, errors.NewEmptyResultError("no valid packages found in the repository index")
	}

	return &repo, nil
}

// fetchPackagesIndex tries the plain-text index first and the gzip-compressed
// one second. Failure to retrieve either is fatal for this ingestion mode.
func (s *APTSource) fetchPackagesIndex(ctx context.Context, base *url.URL) (string, error) {
	plain, plainErr := s.client.Get(ctx, base.JoinPath("Packages").String())
	if plainErr == nil {
		return string(plain), nil
	}

	compressed, gzErr := s.client.Get(ctx, base.JoinPath("Packages.gz").String())
	if gzErr != nil {
		return "", errors.NewFetchError(
			fmt.Sprintf("failed to retrieve a package index from %s", base),
			fmt.Errorf("Packages: %v; Packages.gz: %w", plainErr, gzErr))
	}

	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", errors.NewDecompressionError(err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.NewDecompressionError(err)
	}

	return string(decompressed), nil
}

// applyRelease fills repository metadata from Release fields. Origin wins
// over Label for the name.
func applyRelease(repo *models.Repo, fields map[string]string) {
	if v := fields["Origin"]; v != "" {
		repo.Name = v
	} else if v := fields["Label"]; v != "" {
		repo.Name = v
	}
	if v := fields["Description"]; v != "" {
		repo.Description = v
	}
}

// appFromControlBlock maps one package block to an AppItem. Blocks without
// both Package and Filename are not installable entries and are dropped.
func appFromControlBlock(fields map[string]string, base *url.URL) (models.AppItem, bool) {
	pkg := fields["Package"]
	filename := fields["Filename"]
	if pkg == "" || filename == "" {
		return models.AppItem{}, false
	}

	app := models.NewAppItem()
	app.BundleIdentifier = pkg
	app.DownloadURL = resolveRef(base, filename)

	app.Version = fields["Version"]
	if app.Version == "" {
		app.Version = aptFallbackVersion
	}

	app.Name = fields["Name"]
	if app.Name == "" {
		app.Name = pkg
	}

	app.DeveloperName = stripEmail(fields["Author"])
	if app.DeveloperName == "" {
		app.DeveloperName = stripEmail(fields["Maintainer"])
	}
	if app.DeveloperName == "" {
		app.DeveloperName = aptFallbackDeveloper
	}

	app.LocalizedDescription = fields["Description"]

	if icon := fields["Icon"]; icon != "" {
		app.IconURL = resolveRef(base, icon)
	}
	if section := fields["Section"]; section != "" {
		app.Category = section
	}
	if size, err := strconv.ParseInt(fields["Size"], 10, 64); err == nil {
		app.Size = size
	}

	return app, true
}

// resolveRef resolves a possibly-relative reference against the repository
// base URL. Absolute URLs pass through untouched.
func resolveRef(base *url.URL, ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

// stripEmail drops a trailing "<email>" part from a maintainer field.
func stripEmail(s string) string {
	if i := strings.Index(s, "<"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
