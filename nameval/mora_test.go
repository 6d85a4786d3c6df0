package nameval

import (
	"strings"
	"testing"
)

func moraStr(moras []Mora) string {
	return strings.Join(Surfaces(moras), "|")
}

func TestSegment(t *testing.T) {
	tests := []struct {
		kana string
		want string
	}{
		{"サクラ", "サ|ク|ラ"},
		{"シンブン", "シ|ン|ブ|ン"},
		{"キャミ", "キャ|ミ"},
		{"コーラ", "コ|ー|ラ"},
		{"コーーラ", "コ|ー|ー|ラ"},
		{"ラーメン", "ラ|ー|メ|ン"},
		{"カップヌードル", "カ|ッ|プ|ヌ|ー|ド|ル"},
		{"キャラメル", "キャ|ラ|メ|ル"},
		{"ファイル", "ファ|イ|ル"},
		{"クヮルテット", "クヮ|ル|テ|ッ|ト"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.kana, func(t *testing.T) {
			got := moraStr(Segment(tt.kana))
			if got != tt.want {
				t.Errorf("Segment(%q) = %q, want %q", tt.kana, got, tt.want)
			}
		})
	}
}

// Concatenated surfaces must always reconstruct the input exactly.
func TestSegmentPartition(t *testing.T) {
	inputs := []string{
		"サクラ", "シンブン", "キャミ", "コーーラ", "ッーア", "ーーー",
		"カップヌードル", "ヴァイオリン", "ピャーッ", "ンンン",
	}
	for _, in := range inputs {
		kana := NormalizeKana(in)
		var b strings.Builder
		for _, m := range Segment(kana) {
			b.WriteString(m.Surface)
		}
		if b.String() != kana {
			t.Errorf("partition broken for %q: got %q", kana, b.String())
		}
	}
}

func TestSegmentVowels(t *testing.T) {
	tests := []struct {
		kana string
		want []string // one entry per mora, "" for no vowel
	}{
		{"サクラ", []string{"a", "u", "a"}},
		{"シンブン", []string{"i", "", "u", ""}},
		{"キャミ", []string{"a", "i"}},
		{"コーラ", []string{"o", "o", "a"}},
		{"キュー", []string{"u", "u"}},
		{"ヴァン", []string{"a", ""}},
	}
	for _, tt := range tests {
		moras := Segment(tt.kana)
		if len(moras) != len(tt.want) {
			t.Fatalf("Segment(%q) has %d moras, want %d", tt.kana, len(moras), len(tt.want))
		}
		for i, m := range moras {
			if m.Vowel != tt.want[i] {
				t.Errorf("Segment(%q)[%d].Vowel = %q, want %q", tt.kana, i, m.Vowel, tt.want[i])
			}
		}
	}
}

// A run of elongation marks all inherit the vowel of the mora before the run.
func TestSegmentElongationChain(t *testing.T) {
	moras := Segment("コーー")
	if len(moras) != 3 {
		t.Fatalf("want 3 moras, got %d", len(moras))
	}
	for i, m := range moras {
		if m.Vowel != "o" {
			t.Errorf("mora %d vowel = %q, want o", i, m.Vowel)
		}
	}
	if moras[0].Special || !moras[1].Special || !moras[2].Special {
		t.Errorf("special flags wrong: %+v", moras)
	}
}

// The geminate marker does not touch the vowel state, so an elongation
// mark right after it inherits the vowel from before the geminate. At
// string start the fixed fallback vowel applies.
func TestSegmentGeminateThenElongation(t *testing.T) {
	moras := Segment("カッー")
	if len(moras) != 3 {
		t.Fatalf("want 3 moras, got %d", len(moras))
	}
	if moras[1].Vowel != "" {
		t.Errorf("geminate vowel = %q, want none", moras[1].Vowel)
	}
	if moras[2].Vowel != "a" {
		t.Errorf("elongation after geminate vowel = %q, want a", moras[2].Vowel)
	}

	moras = Segment("ッー")
	if moras[1].Vowel != choonFallbackVowel {
		t.Errorf("leading geminate+elongation vowel = %q, want fallback %q", moras[1].Vowel, choonFallbackVowel)
	}
}

// The moraic nasal clears the vowel state: a following elongation mark
// falls back to the default vowel.
func TestSegmentNasalClearsVowel(t *testing.T) {
	moras := Segment("カンー")
	if moras[2].Vowel != choonFallbackVowel {
		t.Errorf("elongation after nasal vowel = %q, want fallback %q", moras[2].Vowel, choonFallbackVowel)
	}
}

func TestSegmentLeadingElongation(t *testing.T) {
	moras := Segment("ーア")
	if len(moras) != 2 {
		t.Fatalf("want 2 moras, got %d", len(moras))
	}
	if moras[0].Vowel != choonFallbackVowel {
		t.Errorf("leading elongation vowel = %q, want %q", moras[0].Vowel, choonFallbackVowel)
	}
}

func TestSegmentYoonFlags(t *testing.T) {
	moras := Segment("キャミ")
	if !moras[0].Yoon || moras[0].Special {
		t.Errorf("キャ flags wrong: %+v", moras[0])
	}
	if moras[1].Yoon {
		t.Errorf("ミ should not be yoon")
	}
	// vowel comes from the combiner, not the base
	if moras[0].Vowel != "a" {
		t.Errorf("キャ vowel = %q, want a", moras[0].Vowel)
	}
	if fo := Segment("フォン"); fo[0].Vowel != "o" || !fo[0].Yoon {
		t.Errorf("フォ = %+v, want yoon with vowel o", fo[0])
	}
}

// Voiced bases resolve through decomposition for vowel lookup.
func TestSegmentVoicedVowelLookup(t *testing.T) {
	tests := []struct {
		kana  string
		vowel string
	}{
		{"ガ", "a"},
		{"ジ", "i"},
		{"ブ", "u"},
		{"ペ", "e"},
		{"ド", "o"},
	}
	for _, tt := range tests {
		moras := Segment(tt.kana)
		if len(moras) != 1 || moras[0].Vowel != tt.vowel {
			t.Errorf("Segment(%q) vowel = %q, want %q", tt.kana, moras[0].Vowel, tt.vowel)
		}
	}
}
