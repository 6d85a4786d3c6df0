package nameval

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical script markers.
const (
	choon   = 'ー' // elongation mark, U+30FC
	sokuon  = 'ッ' // geminate marker
	moraicN = 'ン' // moraic nasal
)

// NormalizeKana maps an arbitrary string to its canonical katakana
// reading: NFKC folding, hiragana→katakana conversion, then a lossy
// filter that keeps only the katakana inventory (ァ..ヴ and ー).
// Everything else, including Latin letters and punctuation, is
// silently dropped. The result is stable under re-normalization.
func NormalizeKana(input string) string {
	normed := norm.NFKC.String(input)
	var b strings.Builder
	b.Grow(len(normed))
	for _, r := range normed {
		if r >= 'ぁ' && r <= 'ゖ' {
			r += 0x60 // hiragana block sits 0x60 below katakana
		}
		if (r >= 'ァ' && r <= 'ヴ') || r == choon {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// baseKana strips a voicing diacritic from a katakana character via
// canonical decomposition, e.g. ガ→カ, パ→ハ. Characters without a
// diacritic come back unchanged.
func baseKana(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	for _, first := range decomposed {
		return first
	}
	return r
}

// Closed character classes used by the extractor. Membership is
// checked on the raw normalized string, not on moras, because voicing
// marks attach to characters.
var (
	voicedKana     = runeSet("ガギグゲゴザジズゼゾダヂヅデドバビブベボヴ")
	semiVoicedKana = runeSet("パピプペポ")
	plainVowelKana = runeSet("アイウエオ")
)

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars)/3)
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}
