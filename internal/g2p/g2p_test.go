package g2p

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDispatch(t *testing.T) {
	tests := []struct {
		name    string
		g2pType string
		check   func(t *testing.T, b Backend)
	}{
		{
			name:    "g2p_en keeps space tokens",
			g2pType: "g2p_en",
			check: func(t *testing.T, b Backend) {
				eb, ok := b.(*englishBackend)
				if !ok {
					t.Fatalf("got %T, want *englishBackend", b)
				}
				if eb.noSpace {
					t.Error("noSpace = true, want false")
				}
			},
		},
		{
			name:    "g2p_en_no_space filters space tokens",
			g2pType: "g2p_en_no_space",
			check: func(t *testing.T, b Backend) {
				eb, ok := b.(*englishBackend)
				if !ok {
					t.Fatalf("got %T, want *englishBackend", b)
				}
				if !eb.noSpace {
					t.Error("noSpace = false, want true")
				}
			},
		},
		{
			name:    "pyopenjtalk selects phoneme mode",
			g2pType: "pyopenjtalk",
			check: func(t *testing.T, b Backend) {
				jb, ok := b.(*japaneseBackend)
				if !ok {
					t.Fatalf("got %T, want *japaneseBackend", b)
				}
				if jb.kana {
					t.Error("kana = true, want false")
				}
			},
		},
		{
			name:    "pyopenjtalk_kana selects kana mode",
			g2pType: "pyopenjtalk_kana",
			check: func(t *testing.T, b Backend) {
				jb, ok := b.(*japaneseBackend)
				if !ok {
					t.Fatalf("got %T, want *japaneseBackend", b)
				}
				if !jb.kana {
					t.Error("kana = false, want true")
				}
			},
		},
		{
			name:    "pypinyin_g2p keeps whole syllables",
			g2pType: "pypinyin_g2p",
			check: func(t *testing.T, b Backend) {
				pb, ok := b.(*pinyinBackend)
				if !ok {
					t.Fatalf("got %T, want *pinyinBackend", b)
				}
				if pb.splitPhone {
					t.Error("splitPhone = true, want false")
				}
			},
		},
		{
			name:    "pypinyin_g2p_phone splits syllables",
			g2pType: "pypinyin_g2p_phone",
			check: func(t *testing.T, b Backend) {
				pb, ok := b.(*pinyinBackend)
				if !ok {
					t.Fatalf("got %T, want *pinyinBackend", b)
				}
				if !pb.splitPhone {
					t.Error("splitPhone = false, want true")
				}
			},
		},
		{
			name:    "espeak default language",
			g2pType: "espeak",
			check: func(t *testing.T, b Backend) {
				assertEspeak(t, b, "fr-fr", false)
			},
		},
		{
			name:    "espeak with language suffix",
			g2pType: "espeak_en-us",
			check: func(t *testing.T, b Backend) {
				assertEspeak(t, b, "en-us", false)
			},
		},
		{
			name:    "espeak_arpabet default language",
			g2pType: "espeak_arpabet",
			check: func(t *testing.T, b Backend) {
				assertEspeak(t, b, "fr-fr", true)
			},
		},
		{
			name:    "espeak_arpabet with language suffix",
			g2pType: "espeak_arpabet_de",
			check: func(t *testing.T, b Backend) {
				assertEspeak(t, b, "de", true)
			},
		},
		{
			name:    "espeak_arpabet keeps underscore region codes whole",
			g2pType: "espeak_arpabet_en_us",
			check: func(t *testing.T, b Backend) {
				assertEspeak(t, b, "en_us", true)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.g2pType)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.g2pType, err)
			}
			tt.check(t, b)
		})
	}
}

func assertEspeak(t *testing.T, b Backend, lang string, arpabet bool) {
	t.Helper()
	eb, ok := b.(*espeakBackend)
	if !ok {
		t.Fatalf("got %T, want *espeakBackend", b)
	}
	if eb.lang != lang {
		t.Errorf("lang = %q, want %q", eb.lang, lang)
	}
	if eb.arpabet != arpabet {
		t.Errorf("arpabet = %v, want %v", eb.arpabet, arpabet)
	}
}

func TestNewUnsupported(t *testing.T) {
	for _, key := range []string{"not_a_real_backend", "", "g2p", "phonetisaurus"} {
		_, err := New(key)
		if err == nil {
			t.Fatalf("New(%q): expected error", key)
		}
		if !errors.Is(err, ErrUnsupportedG2P) {
			t.Errorf("New(%q) error = %v, want ErrUnsupportedG2P", key, err)
		}
		if key != "" && !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention offending value %q", err, key)
		}
	}
}

func TestNewWithOptionsEspeakCommand(t *testing.T) {
	b, err := NewWithOptions("espeak_en", Options{EspeakCommand: "/opt/espeak/bin/espeak-ng"})
	if err != nil {
		t.Fatal(err)
	}
	eb := b.(*espeakBackend)
	if eb.exe != "/opt/espeak/bin/espeak-ng" {
		t.Errorf("exe = %q, want override", eb.exe)
	}
}

// Model-holding backends must not build their model at configuration time:
// a tokenizer configured in a parent context may be re-created in several
// worker processes, each of which owns a private model handle.
func TestEnglishModelIsLazyAndPerInstance(t *testing.T) {
	a, err := New("g2p_en_no_space")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("g2p_en_no_space")
	if err != nil {
		t.Fatal(err)
	}

	ea, eb := a.(*englishBackend), b.(*englishBackend)
	if ea == eb {
		t.Fatal("New returned a shared backend instance")
	}
	if ea.model != nil || eb.model != nil {
		t.Error("model constructed at configuration time, want lazy construction on first call")
	}
}

func TestJapaneseAnalyzerIsLazy(t *testing.T) {
	b, err := New("pyopenjtalk")
	if err != nil {
		t.Fatal(err)
	}
	if jb := b.(*japaneseBackend); jb.tok != nil {
		t.Error("analyzer constructed at configuration time, want lazy construction")
	}
}

func TestSupportedCoversDispatcher(t *testing.T) {
	exact := []string{
		"g2p_en", "g2p_en_no_space",
		"pyopenjtalk", "pyopenjtalk_kana",
		"pypinyin_g2p", "pypinyin_g2p_phone",
		"espeak", "espeak_arpabet",
	}
	for _, key := range exact {
		if _, err := New(key); err != nil {
			t.Errorf("New(%q) error: %v", key, err)
		}
	}
	if len(Supported()) != 8 {
		t.Errorf("Supported() lists %d keys, want 8", len(Supported()))
	}
}
