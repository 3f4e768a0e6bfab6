package g2p

import (
	"reflect"
	"testing"
)

func TestSplitInitialFinal(t *testing.T) {
	tests := []struct {
		syllable string
		want     [2]string
	}{
		{"zhong1", [2]string{"zh", "ong1"}},
		{"chi1", [2]string{"ch", "i1"}},
		{"shang4", [2]string{"sh", "ang4"}},
		{"ma1", [2]string{"m", "a1"}},
		{"zi5", [2]string{"z", "i5"}},
		// y/w are not initials: whole syllable becomes the final.
		{"yu4", [2]string{"", "yu4"}},
		{"wo3", [2]string{"", "wo3"}},
		{"a1", [2]string{"", "a1"}},
	}

	for _, tt := range tests {
		if got := splitInitialFinal(tt.syllable); got != tt.want {
			t.Errorf("splitInitialFinal(%q) = %v, want %v", tt.syllable, got, tt.want)
		}
	}
}

func TestPinyinBackendSyllables(t *testing.T) {
	b, err := New("pypinyin_g2p")
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.Phonemize("中国")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zhong1", "guo2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Phonemize(中国) = %v, want %v", got, want)
	}
}

func TestPinyinBackendPhones(t *testing.T) {
	b, err := New("pypinyin_g2p_phone")
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.Phonemize("中国")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"zh", "ong1", "g", "uo2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Phonemize(中国) = %v, want %v", got, want)
	}
}

func TestPinyinBackendKeepsNonHanRunes(t *testing.T) {
	b, err := New("pypinyin_g2p")
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.Phonemize("A中")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "zhong1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Phonemize(A中) = %v, want %v", got, want)
	}
}
