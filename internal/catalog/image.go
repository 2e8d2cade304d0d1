package catalog

import "strings"

// Default image placeholders.
const (
	DefaultPlaceholder      = "https://placehold.co/80x80?text=No+Image"
	DefaultErrorPlaceholder = "https://placehold.co/80x80?text=Error"
)

// DefaultBlockedDomains lists hosts whose images are known to be dead or blocked for
// cross-origin loading.
//
//nolint:gochecknoglobals // Read-only default data, copied into each ImagePolicy.
var DefaultBlockedDomains = []string{
	"placeimg.com",
	"susercontent.com",
	"api.escuelajs.co/api/v1/files",
	"via.placeholder.com",
}

// imageNoise removes the bracket and quote characters that wrap stringified URL lists.
//
//nolint:gochecknoglobals // Stateless replacer, safe for concurrent use.
var imageNoise = strings.NewReplacer("[", "", "]", "", `"`, "", "'", "")

// ImagePolicy chooses which image URL to show for a product.
type ImagePolicy struct {
	// Blocked holds substrings; a URL containing any of them is never chosen.
	Blocked []string

	// Placeholder is used when no image entry yields a usable URL.
	Placeholder string

	// ErrorPlaceholder replaces the chosen URL when it fails to load on the client.
	ErrorPlaceholder string
}

// DefaultImagePolicy returns the policy with the default denylist and placeholders.
func DefaultImagePolicy() ImagePolicy {
	blocked := make([]string, len(DefaultBlockedDomains))
	copy(blocked, DefaultBlockedDomains)
	return ImagePolicy{
		Blocked:          blocked,
		Placeholder:      DefaultPlaceholder,
		ErrorPlaceholder: DefaultErrorPlaceholder,
	}
}

// Resolve returns the first usable image URL among images, or the placeholder.
// Each entry is stripped of brackets and quotes and split on commas; segments are
// tried in order and the first http(s) URL outside the denylist wins.
func (p ImagePolicy) Resolve(images []string) string {
	for _, img := range images {
		if u, ok := p.candidate(img); ok {
			return u
		}
	}
	return p.Placeholder
}

// Fallback returns the URL to substitute when the resolved image fails to load.
func (p ImagePolicy) Fallback() string {
	if p.ErrorPlaceholder == "" {
		return p.Placeholder
	}
	return p.ErrorPlaceholder
}

func (p ImagePolicy) candidate(raw string) (string, bool) {
	cleaned := strings.TrimSpace(imageNoise.Replace(raw))
	if cleaned == "" {
		return "", false
	}
	for _, segment := range strings.Split(cleaned, ",") {
		segment = strings.TrimSpace(segment)
		if p.usable(segment) {
			return segment, true
		}
	}
	return "", false
}

func (p ImagePolicy) usable(u string) bool {
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return false
	}
	return !p.IsBlocked(u)
}

// IsBlocked reports whether u contains any denylisted substring.
func (p ImagePolicy) IsBlocked(u string) bool {
	for _, domain := range p.Blocked {
		if domain != "" && strings.Contains(u, domain) {
			return true
		}
	}
	return false
}
