package nameval

import "testing"

func TestNormalizeKana(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"katakana passthrough", "サクラ", "サクラ"},
		{"hiragana to katakana", "さくら", "サクラ"},
		{"mixed scripts", "さクら", "サクラ"},
		{"halfwidth katakana", "ｻｸﾗ", "サクラ"},
		{"elongation retained", "コーラ", "コーラ"},
		{"hiragana with elongation", "こーら", "コーラ"},
		{"latin stripped", "ABCサクラxyz", "サクラ"},
		{"digits and symbols stripped", "サ・ク ラ123!", "サクラ"},
		{"voiced kept", "ガギグゲゴ", "ガギグゲゴ"},
		{"hiragana vu", "ゔ", "ヴ"},
		{"empty", "", ""},
		{"only foreign", "hello", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKana(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeKana(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKanaIdempotent(t *testing.T) {
	inputs := []string{"サクラ", "さくら", "ｷｬﾐ", "コーーラ", "Hello世界", "シンブン", "ぱぴぷ", ""}
	for _, in := range inputs {
		once := NormalizeKana(in)
		twice := NormalizeKana(once)
		if once != twice {
			t.Errorf("NormalizeKana not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestBaseKana(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'ガ', 'カ'},
		{'パ', 'ハ'},
		{'ブ', 'フ'},
		{'ヴ', 'ウ'},
		{'カ', 'カ'},
		{'ン', 'ン'},
	}
	for _, tt := range tests {
		if got := baseKana(tt.in); got != tt.want {
			t.Errorf("baseKana(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
