package nameval

// vowelOf maps an undecorated katakana character to its final vowel.
// Voiced characters are resolved through baseKana first, so only the
// unvoiced bases (plus ヴ and the small fallback vowels) appear here.
var vowelOf = map[rune]string{}

// vowelRows lists, per vowel, every base character that ends in it.
var vowelRows = []struct {
	vowel string
	chars string
}{
	{"a", "アカサタナハマヤラワァャヮ"},
	{"i", "イキシチニヒミリヰィ"},
	{"u", "ウクスツヌフムユルヴゥュ"},
	{"e", "エケセテネヘメレヱェ"},
	{"o", "オコソトノホモヨロヲォョ"},
}

func init() {
	for _, row := range vowelRows {
		for _, r := range row.chars {
			vowelOf[r] = row.vowel
		}
	}
}

// smallCombiners are the small kana that fuse with a preceding base
// character into a single yoon mora (キャ, ファ, クヮ...).
var smallCombiners = runeSet("ャュョァィゥェォヮ")

// combinerVowel returns the vowel contributed by a small combiner.
var combinerVowel = map[rune]string{
	'ャ': "a", 'ュ': "u", 'ョ': "o",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ヮ': "a",
}

// choonFallbackVowel is used when an elongation mark appears before
// any vowel-bearing mora, e.g. at the start of the string.
const choonFallbackVowel = "a"

// Segment splits a normalized katakana string into moras in a single
// left-to-right pass. The concatenated surfaces always reconstruct
// the input exactly.
//
// Decision order per position: elongation mark, geminate marker,
// moraic nasal, base+small-combiner fusion, then a single character.
// An elongation mark inherits the vowel of the last vowel-bearing
// mora, so a run of marks all carry the same vowel. A geminate marker
// leaves that state untouched: ッー yields an elongation mora with the
// vowel from before the ッ (or the fallback vowel at string start).
// The moraic nasal clears it.
func Segment(kana string) []Mora {
	runes := []rune(kana)
	moras := make([]Mora, 0, len(runes))
	lastVowel := ""
	for i := 0; i < len(runes); {
		r := runes[i]
		switch r {
		case choon:
			v := lastVowel
			if v == "" {
				v = choonFallbackVowel
			}
			moras = append(moras, Mora{Surface: string(r), Vowel: v, Special: true})
			i++
			continue
		case sokuon:
			moras = append(moras, Mora{Surface: string(r), Special: true})
			i++
			continue
		case moraicN:
			moras = append(moras, Mora{Surface: string(r), Special: true})
			lastVowel = ""
			i++
			continue
		}
		if i+1 < len(runes) {
			if _, ok := smallCombiners[runes[i+1]]; ok {
				v := combinerVowel[runes[i+1]]
				moras = append(moras, Mora{
					Surface: string(runes[i : i+2]),
					Vowel:   v,
					Yoon:    true,
				})
				lastVowel = v
				i += 2
				continue
			}
		}
		v := vowelOf[baseKana(r)]
		moras = append(moras, Mora{Surface: string(r), Vowel: v})
		lastVowel = v
		i++
	}
	return moras
}

// Surfaces extracts the surface spans of a mora sequence for display.
func Surfaces(moras []Mora) []string {
	out := make([]string, len(moras))
	for i, m := range moras {
		out[i] = m.Surface
	}
	return out
}
