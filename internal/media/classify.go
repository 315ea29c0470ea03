package media

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind enumerates the media source categories a URL can classify as.
type Kind int

const (
	KindUnsupported Kind = iota
	KindYouTube
	KindSunoPlaylist
	KindDirectAudio
)

func (k Kind) String() string {
	switch k {
	case KindYouTube:
		return "youtube"
	case KindSunoPlaylist:
		return "suno-playlist"
	case KindDirectAudio:
		return "direct-audio"
	default:
		return "unsupported"
	}
}

// Classification is the derived media-source category of a URL.
//
// VideoID is set only for [KindYouTube], PlaylistID only for
// [KindSunoPlaylist]. URL always carries the input the classification was
// computed from.
type Classification struct {
	Kind       Kind
	VideoID    string
	PlaylistID string
	URL        string
}

// DefaultTrustedPrefixes lists storage prefixes whose objects are always
// treated as streamable audio, regardless of file extension.
var DefaultTrustedPrefixes = []string{"https://storage.googleapis.com/"}

// audioExtensions are the path suffixes accepted as directly streamable.
var audioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a"}

// videoIDPattern matches a well-formed 11 character YouTube video id.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Classifier assigns media source kinds to raw URLs.
type Classifier struct {
	trustedPrefixes []string
}

// NewClassifier creates a Classifier. With no prefixes it falls back to
// [DefaultTrustedPrefixes].
func NewClassifier(trustedPrefixes ...string) *Classifier {
	if len(trustedPrefixes) == 0 {
		trustedPrefixes = DefaultTrustedPrefixes
	}
	return &Classifier{trustedPrefixes: trustedPrefixes}
}

var defaultClassifier = NewClassifier()

// Classify classifies raw using the default classifier.
func Classify(raw string) Classification {
	return defaultClassifier.Classify(raw)
}

// Classify inspects a raw URL string and assigns it to exactly one media
// source kind. Empty, scheme-less-and-hostless, or unparseable input yields
// [KindUnsupported]; this never returns an error.
func (c *Classifier) Classify(raw string) Classification {
	unsupported := Classification{Kind: KindUnsupported, URL: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return unsupported
	}

	// Bare host paths like "suno.com/playlist/x" are accepted the same way
	// the embed modal accepts them.
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return unsupported
	}

	host := normalizeHostname(parsed)

	// A provider host with a degenerate id is unsupported outright. It never
	// cascades into the audio checks, even when the path looks like a file.
	if host == "youtube.com" || host == "youtu.be" {
		if id := extractVideoID(parsed, host); id != "" {
			return Classification{Kind: KindYouTube, VideoID: id, URL: raw}
		}
		return unsupported
	}

	if strings.Contains(host, "suno.com") {
		if id := extractSunoPlaylistID(parsed); id != "" {
			return Classification{Kind: KindSunoPlaylist, PlaylistID: id, URL: raw}
		}
		return unsupported
	}

	if c.isStreamable(trimmed, parsed) {
		return Classification{Kind: KindDirectAudio, URL: raw}
	}

	return unsupported
}

// extractVideoID pulls the video id from the "v" query parameter, or from
// the path for the short domain. Ids of length other than 11 are rejected.
func extractVideoID(parsed *url.URL, host string) string {
	id := parsed.Query().Get("v")
	if host == "youtu.be" {
		id = strings.TrimPrefix(parsed.Path, "/")
		if idx := strings.Index(id, "/"); idx >= 0 {
			id = id[:idx]
		}
	}

	if !videoIDPattern.MatchString(id) {
		return ""
	}
	return id
}

// extractSunoPlaylistID matches a "/playlist/<id>" path.
func extractSunoPlaylistID(parsed *url.URL) string {
	if !strings.HasPrefix(parsed.Path, "/playlist/") {
		return ""
	}
	parts := strings.Split(parsed.Path, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// isStreamable reports whether the URL points at directly playable audio:
// either hosted under a trusted storage prefix, or ending in a known audio
// extension.
func (c *Classifier) isStreamable(raw string, parsed *url.URL) bool {
	lowered := strings.ToLower(raw)
	for _, prefix := range c.trustedPrefixes {
		if strings.HasPrefix(lowered, strings.ToLower(prefix)) {
			return true
		}
	}

	path := strings.ToLower(parsed.Path)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

// IsProviderURL reports whether raw is hosted by an embed provider (YouTube
// or Suno), independent of whether an id can be extracted. Callers use this
// to distinguish a failed embed resolution from a plain external link.
func IsProviderURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := normalizeHostname(parsed)
	return host == "youtube.com" || host == "youtu.be" || strings.Contains(host, "suno.com")
}

// normalizeHostname returns the lowercased hostname with any "www." prefix
// and port stripped.
func normalizeHostname(parsed *url.URL) string {
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
