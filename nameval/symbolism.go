package nameval

import "strings"

// AdvancedScores carries the optional sound-symbolism analysis that
// can be attached to a Result when Config.Advanced is set.
type AdvancedScores struct {
	// Symbolism is the bouba–kiki axis: -1 round/large to +1 sharp/small.
	Symbolism float64 `json:"symbolism"`
	// Naturalness penalizes degenerate repetition, in [0,1].
	Naturalness float64 `json:"naturalness"`
	// Rhythm is a rough accent heuristic from the name ending, in [0,1].
	Rhythm float64 `json:"rhythm"`
}

// Sharp (kiki) characters: i-row, e-row and voiceless consonants.
// Round (bouba) characters: u-row, o-row, nasals and liquids.
var (
	sharpKana = runeSet("キシチニヒミリイエケセテネヘメレ")
	roundKana = runeSet("アクストヌフムユルオコソノホモヨロワン")
)

// SoundSymbolism scores a normalized kana string on the bouba–kiki
// axis. Voicing marks are resolved to the base character first;
// voiced characters pull toward bouba, semi-voiced toward kiki.
func SoundSymbolism(kana string) float64 {
	var score float64
	count := 0
	for _, r := range kana {
		base := baseKana(r)
		if _, ok := sharpKana[base]; ok {
			score += 1
		} else if _, ok := roundKana[base]; ok {
			score -= 1
		}
		if _, ok := voicedKana[r]; ok {
			score -= 0.5
		}
		if _, ok := semiVoicedKana[r]; ok {
			score += 0.5
		}
		count++
	}
	if count == 0 {
		return 0
	}
	score /= float64(count)
	if score < -1 {
		return -1
	}
	if score > 1 {
		return 1
	}
	return score
}

// naturalnessScore penalizes three identical moras in a row (ラララ).
func naturalnessScore(moras []Mora) float64 {
	score := 1.0
	for i := 0; i+2 < len(moras); i++ {
		if moras[i].Surface == moras[i+1].Surface && moras[i].Surface == moras[i+2].Surface {
			score -= 0.3
		}
	}
	return clamp01(score)
}

// rhythmScore estimates accent stability from the shape of the name.
func rhythmScore(kana string) float64 {
	score := 0.5
	if strings.HasSuffix(kana, string(choon)) || strings.HasSuffix(kana, string(moraicN)) {
		score += 0.2
	}
	// a geminate in second position (ネット) gives a punchy accent
	runes := []rune(kana)
	if len(runes) >= 3 && runes[1] == sokuon {
		score += 0.3
	}
	return clamp01(score)
}

// AnalyzeAdvanced bundles the optional heuristics for one name.
func AnalyzeAdvanced(kana string, moras []Mora) AdvancedScores {
	return AdvancedScores{
		Symbolism:   SoundSymbolism(kana),
		Naturalness: naturalnessScore(moras),
		Rhythm:      rhythmScore(kana),
	}
}
