package nameval

import "math"

// phoneme reference range for the density feature: a bare vowel mora
// counts 1 phoneme, consonant+vowel 2, a yoon cluster 3.
const (
	densityFloor = 1.0
	densityCeil  = 3.0
)

// Extract computes the full feature vector for a segmented name.
// Every value is finite and in [0,1], and higher always means easier
// to pronounce; the polarity is fixed here so Compose never has to
// know per-feature direction. An empty mora sequence yields the
// all-zero sentinel vector instead of dividing by zero.
func Extract(moras []Mora, kana string, cfg Config) FeatureVector {
	fv := FeatureVector{
		Values: make(map[string]float64, len(FeatureNames())),
		M:      len(moras),
		Moras:  Surfaces(moras),
	}
	if len(moras) == 0 {
		for _, name := range FeatureNames() {
			fv.Values[name] = 0
		}
		return fv
	}

	m := float64(len(moras))
	var nSpecial, nYoon, nOpen, phonemes int
	seenVowels := make(map[string]struct{}, 5)
	for _, mora := range moras {
		if mora.Special {
			nSpecial++
		}
		if mora.Yoon {
			nYoon++
		}
		if mora.Vowel != "" {
			nOpen++
			seenVowels[mora.Vowel] = struct{}{}
		}
		phonemes += phonemeCount(mora)
	}

	fv.Values[FeatureLength] = lengthScore(len(moras), cfg)
	fv.Values[FeatureOpenness] = float64(nOpen) / m
	fv.Values[FeatureSpecialRatio] = 1 - float64(nSpecial)/m
	fv.Values[FeatureYoonRatio] = 1 - float64(nYoon)/m
	fv.Values[FeatureVoicedRatio] = 1 - charRatio(kana, voicedKana)
	fv.Values[FeatureSemiVoiced] = 1 - charRatio(kana, semiVoicedKana)
	fv.Values[FeatureVowelDivers] = float64(len(seenVowels)) / m

	avgPhonemes := float64(phonemes) / m
	density := clamp01((avgPhonemes - densityFloor) / (densityCeil - densityFloor))
	fv.Values[FeaturePhonemeDens] = 1 - density

	return fv
}

// lengthScore converts distance from the ideal mora-count band into a
// goodness value: 1 inside [low, high], decaying as a Gaussian outside.
func lengthScore(m int, cfg Config) float64 {
	low, high := cfg.LowMora, cfg.HighMora
	sigma := cfg.Sigma
	if low <= 0 {
		low = 2
	}
	if high < low {
		high = 4
	}
	if sigma <= 0 {
		sigma = 1.2
	}
	var d float64
	switch {
	case m < low:
		d = float64(low - m)
	case m > high:
		d = float64(m - high)
	}
	return clamp01(math.Exp(-(d * d) / (2 * sigma * sigma)))
}

// phonemeCount follows the vowel-only=1 / CV=2 / yoon=3 convention.
// Special moras (ー, ッ, ン) count as a single phoneme.
func phonemeCount(m Mora) int {
	if m.Special {
		return 1
	}
	if m.Yoon {
		return 3
	}
	for _, r := range m.Surface {
		if _, ok := plainVowelKana[r]; ok {
			return 1
		}
		break
	}
	return 2
}

// charRatio reports the fraction of characters of kana that belong to
// the given class. Diacritic classes are character-level, so the
// denominator is the character count, not the mora count.
func charRatio(kana string, class map[rune]struct{}) float64 {
	runes := []rune(kana)
	if len(runes) == 0 {
		return 0
	}
	count := 0
	for _, r := range runes {
		if _, ok := class[r]; ok {
			count++
		}
	}
	return float64(count) / float64(len(runes))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
