// Package urlcheck classifies URL strings against known-bad hosting patterns.
// Findings are advisory: they never block saving a draft, only inform the
// user that an installer client is unlikely to accept the link.
package urlcheck

import "strings"

// Usage is the context a URL is validated for.
type Usage int

const (
	UsageImage Usage = iota
	UsageFile
	UsageWebsite
)

// String returns the string representation of the usage context
func (u Usage) String() string {
	switch u {
	case UsageImage:
		return "image"
	case UsageFile:
		return "file"
	case UsageWebsite:
		return "website"
	default:
		return "unknown"
	}
}

var placeholderDomains = []string{
	"example.com",
	"example.org",
	"example.net",
	"yourdomain",
	"yoursite",
	"placeholder",
}

var loopbackHosts = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
	"[::1]",
}

// fileHostRule maps a known-bad file-hosting pattern to a corrective message.
// The table is deliberately non-exhaustive.
type fileHostRule struct {
	match  func(url string) bool
	reason string
}

var fileHostRules = []fileHostRule{
	{
		match:  func(u string) bool { return strings.Contains(u, "github.com/") && strings.Contains(u, "/blob/") },
		reason: "GitHub blob links are HTML pages; replace /blob/ with /raw/ or use a release asset URL",
	},
	{
		match: func(u string) bool {
			return strings.Contains(u, "github.com/") && !strings.Contains(u, "/releases/download/")
		},
		reason: "GitHub page links are not direct downloads; link a release asset (…/releases/download/…)",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "dropbox.com/") },
		reason: "Dropbox share links are not direct downloads; use dl.dropboxusercontent.com or add ?dl=1",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "drive.google.com/") },
		reason: "Google Drive links are not direct downloads; use a direct-download export link",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "mediafire.com/") },
		reason: "MediaFire pages are not direct downloads; installer clients cannot fetch them",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "mega.nz/") || strings.Contains(u, "mega.io/") },
		reason: "MEGA links require the MEGA client; host the file somewhere directly fetchable",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "archive.org/details/") },
		reason: "archive.org detail pages are not files; use the archive.org/download/ form",
	},
	{
		match:  func(u string) bool { return strings.Contains(u, "icloud.com/") },
		reason: "iCloud share links are not direct downloads",
	},
}

// Check validates a URL string for the given usage context. It returns an
// empty string when the URL is acceptable, otherwise a short human-readable
// reason. Empty input is always acceptable; validation only engages on
// non-empty URLs. Checks short-circuit on the first match.
func Check(raw string, usage Usage) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}

	lower := strings.ToLower(url)

	if !strings.HasPrefix(lower, "https://") {
		return "URL must use https://"
	}

	for _, domain := range placeholderDomains {
		if strings.Contains(lower, domain) {
			return "URL looks like a placeholder domain; replace it with a real host"
		}
	}

	host := hostPart(lower)
	for _, loopback := range loopbackHosts {
		if host == loopback || strings.HasPrefix(host, loopback+":") {
			return "URL points at localhost; installer clients cannot reach it"
		}
	}

	if !strings.Contains(lower, ".") {
		return "URL has no domain"
	}

	if usage == UsageFile {
		for _, rule := range fileHostRules {
			if rule.match(lower) {
				return rule.reason
			}
		}
	}

	// Image context currently has no hard rejections.
	return ""
}

func hostPart(lower string) string {
	rest := strings.TrimPrefix(lower, "https://")
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
