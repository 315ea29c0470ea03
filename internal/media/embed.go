package media

import (
	"fmt"

	"github.com/teostudio/catalog/internal/shared"
)

// EmbedOptions parameterizes embed URL construction.
type EmbedOptions struct {
	Autoplay bool
}

// ResolveEmbed converts a classification into a provider embed URL suitable
// for iframe-style embedding. The second return value is false when the
// classification has no embeddable form (direct audio and unsupported
// sources).
//
// Resolution is pure: the same classification and options always produce the
// same target.
func ResolveEmbed(c Classification, opts EmbedOptions) (string, bool) {
	switch c.Kind {
	case KindYouTube:
		target := fmt.Sprintf("https://www.youtube.com/embed/%s?rel=0", c.VideoID)
		if opts.Autoplay {
			target += "&autoplay=1"
		}
		return target, true
	case KindSunoPlaylist:
		return fmt.Sprintf("https://suno.com/embed/playlist/%s", c.PlaylistID), true
	default:
		return "", false
	}
}

// EmbedURL classifies raw and resolves it in one step.
//
// Returns [shared.ErrEmbedResolution] when the URL is hosted by an embed
// provider but no id could be extracted (the modal shows a notice and
// closes), and [shared.ErrNotEmbeddable] for everything else that has no
// embed form.
func (c *Classifier) EmbedURL(raw string, opts EmbedOptions) (string, error) {
	classification := c.Classify(raw)

	if target, ok := ResolveEmbed(classification, opts); ok {
		return target, nil
	}

	if classification.Kind == KindUnsupported && IsProviderURL(raw) {
		return "", fmt.Errorf("%w: %q", shared.ErrEmbedResolution, raw)
	}

	return "", fmt.Errorf("%w: %s", shared.ErrNotEmbeddable, classification.Kind)
}
