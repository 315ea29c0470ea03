package media

import (
	"errors"
	"testing"

	"github.com/teostudio/catalog/internal/shared"
)

func TestResolveEmbed(t *testing.T) {
	t.Run("youtube with autoplay", func(t *testing.T) {
		c := Classify("https://youtu.be/dQw4w9WgXcQ")
		target, ok := ResolveEmbed(c, EmbedOptions{Autoplay: true})
		if !ok {
			t.Fatal("expected an embed target")
		}
		want := "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&autoplay=1"
		if target != want {
			t.Errorf("expected %q, got %q", want, target)
		}
	})

	t.Run("youtube without autoplay", func(t *testing.T) {
		c := Classify("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		target, ok := ResolveEmbed(c, EmbedOptions{})
		if !ok {
			t.Fatal("expected an embed target")
		}
		if target != "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0" {
			t.Errorf("unexpected target %q", target)
		}
	})

	t.Run("suno playlist", func(t *testing.T) {
		c := Classify("https://suno.com/playlist/abc123")
		target, ok := ResolveEmbed(c, EmbedOptions{Autoplay: true})
		if !ok {
			t.Fatal("expected an embed target")
		}
		// The suno embed template has no autoplay parameter.
		if target != "https://suno.com/embed/playlist/abc123" {
			t.Errorf("unexpected target %q", target)
		}
	})

	t.Run("direct audio is not embeddable", func(t *testing.T) {
		c := Classify("https://cdn.example.com/a.mp3")
		if _, ok := ResolveEmbed(c, EmbedOptions{}); ok {
			t.Error("direct audio should not resolve to an embed")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		c := Classify("https://youtu.be/dQw4w9WgXcQ")
		first, _ := ResolveEmbed(c, EmbedOptions{Autoplay: true})
		second, _ := ResolveEmbed(c, EmbedOptions{Autoplay: true})
		if first != second {
			t.Errorf("resolution is not stable: %q vs %q", first, second)
		}
	})
}

func TestEmbedURL(t *testing.T) {
	classifier := NewClassifier()

	t.Run("resolves provider URL", func(t *testing.T) {
		target, err := classifier.EmbedURL("https://youtu.be/dQw4w9WgXcQ", EmbedOptions{Autoplay: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target != "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&autoplay=1" {
			t.Errorf("unexpected target %q", target)
		}
	})

	t.Run("provider URL with bad id", func(t *testing.T) {
		_, err := classifier.EmbedURL("https://www.youtube.com/watch?v=short", EmbedOptions{})
		if !errors.Is(err, shared.ErrEmbedResolution) {
			t.Errorf("expected ErrEmbedResolution, got %v", err)
		}
	})

	t.Run("non-provider URL", func(t *testing.T) {
		_, err := classifier.EmbedURL("https://cdn.example.com/a.mp3", EmbedOptions{})
		if !errors.Is(err, shared.ErrNotEmbeddable) {
			t.Errorf("expected ErrNotEmbeddable, got %v", err)
		}
	})
}
