package media

import "testing"

func TestClassify_YouTube(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantID  string
		matched bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch URL without www", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short domain", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short domain with query", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", true},
		{"id too short", "https://www.youtube.com/watch?v=short", "", false},
		{"id too long", "https://www.youtube.com/watch?v=dQw4w9WgXcQtoolong", "", false},
		{"no video parameter", "https://www.youtube.com/feed/subscriptions", "", false},
		{"empty short path", "https://youtu.be/", "", false},
		{"audio-looking path stays unsupported", "https://youtube.com/clip.mp3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url)
			if tt.matched {
				if got.Kind != KindYouTube {
					t.Fatalf("expected KindYouTube, got %s", got.Kind)
				}
				if got.VideoID != tt.wantID {
					t.Errorf("expected video id %q, got %q", tt.wantID, got.VideoID)
				}
			} else if got.Kind != KindUnsupported {
				t.Errorf("expected KindUnsupported, got %s", got.Kind)
			}
		})
	}
}

func TestClassify_Suno(t *testing.T) {
	t.Run("playlist URL", func(t *testing.T) {
		got := Classify("https://suno.com/playlist/4f2c9d11-aaaa-bbbb-cccc-0123456789ab")
		if got.Kind != KindSunoPlaylist {
			t.Fatalf("expected KindSunoPlaylist, got %s", got.Kind)
		}
		if got.PlaylistID != "4f2c9d11-aaaa-bbbb-cccc-0123456789ab" {
			t.Errorf("unexpected playlist id %q", got.PlaylistID)
		}
	})

	t.Run("scheme-less input", func(t *testing.T) {
		got := Classify("suno.com/playlist/abc123")
		if got.Kind != KindSunoPlaylist {
			t.Fatalf("expected KindSunoPlaylist, got %s", got.Kind)
		}
		if got.PlaylistID != "abc123" {
			t.Errorf("unexpected playlist id %q", got.PlaylistID)
		}
	})

	t.Run("song path is not a playlist", func(t *testing.T) {
		if got := Classify("https://suno.com/song/abc123"); got.Kind != KindUnsupported {
			t.Errorf("expected KindUnsupported, got %s", got.Kind)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if got := Classify("https://suno.com/playlist/"); got.Kind != KindUnsupported {
			t.Errorf("expected KindUnsupported, got %s", got.Kind)
		}
	})

	t.Run("audio-looking path stays unsupported", func(t *testing.T) {
		if got := Classify("https://suno.com/downloads/mixtape.mp3"); got.Kind != KindUnsupported {
			t.Errorf("expected KindUnsupported, got %s", got.Kind)
		}
	})
}

func TestClassify_DirectAudio(t *testing.T) {
	t.Run("audio extensions", func(t *testing.T) {
		for _, u := range []string{
			"https://cdn.example.com/tracks/neon-drift.mp3",
			"https://cdn.example.com/tracks/neon-drift.WAV",
			"https://cdn.example.com/tracks/neon-drift.ogg",
			"https://cdn.example.com/tracks/neon-drift.m4a",
		} {
			if got := Classify(u); got.Kind != KindDirectAudio {
				t.Errorf("%s: expected KindDirectAudio, got %s", u, got.Kind)
			}
		}
	})

	t.Run("trusted prefix without extension", func(t *testing.T) {
		got := Classify("https://storage.googleapis.com/teo-audio/tracks/42")
		if got.Kind != KindDirectAudio {
			t.Fatalf("expected KindDirectAudio, got %s", got.Kind)
		}
		if got.URL != "https://storage.googleapis.com/teo-audio/tracks/42" {
			t.Errorf("classification should carry the source URL, got %q", got.URL)
		}
	})

	t.Run("custom trusted prefix", func(t *testing.T) {
		classifier := NewClassifier("https://media.teo.example/")
		if got := classifier.Classify("https://media.teo.example/raw/88"); got.Kind != KindDirectAudio {
			t.Errorf("expected KindDirectAudio, got %s", got.Kind)
		}
		if got := classifier.Classify("https://storage.googleapis.com/teo-audio/raw/88"); got.Kind != KindUnsupported {
			t.Errorf("default prefix should not apply, got %s", got.Kind)
		}
	})

	t.Run("non-audio extension", func(t *testing.T) {
		if got := Classify("https://cdn.example.com/covers/art.png"); got.Kind != KindUnsupported {
			t.Errorf("expected KindUnsupported, got %s", got.Kind)
		}
	})
}

func TestClassify_Unsupported(t *testing.T) {
	for name, u := range map[string]string{
		"empty":            "",
		"whitespace":       "   ",
		"malformed":        "https://%zz^invalid",
		"bandcamp link":    "https://teo.bandcamp.com/album/first-light",
		"placeholder hash": "#",
	} {
		t.Run(name, func(t *testing.T) {
			if got := Classify(u); got.Kind != KindUnsupported {
				t.Errorf("expected KindUnsupported for %q, got %s", u, got.Kind)
			}
		})
	}
}

func TestIsProviderURL(t *testing.T) {
	if !IsProviderURL("https://www.youtube.com/watch?v=bad") {
		t.Error("youtube host should register as a provider URL")
	}
	if !IsProviderURL("https://suno.com/playlist/") {
		t.Error("suno host should register as a provider URL")
	}
	if IsProviderURL("https://cdn.example.com/a.mp3") {
		t.Error("plain CDN host is not a provider URL")
	}
	if IsProviderURL("") {
		t.Error("empty input is not a provider URL")
	}
}
