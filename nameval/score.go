package nameval

import "math"

// logFloor keeps the geometric mean defined when a feature hits zero.
const logFloor = 1e-12

// Compose collapses a feature vector into a single score in [0,1]
// under the configured weights and composition mode. Only recognized
// feature names participate; negative weights are clamped to zero and
// the rest normalized to sum to 1. An all-zero weight set composes to
// 0 by convention, and NaN/Inf can never escape: the geometric path
// floors every feature before taking the log.
func Compose(fv FeatureVector, cfg Config) float64 {
	names := FeatureNames()
	weights := make([]float64, len(names))
	var sum float64
	for i, name := range names {
		w := cfg.Weights[name]
		if w < 0 {
			w = 0
		}
		weights[i] = w
		sum += w
	}
	if sum == 0 {
		return 0
	}

	var score float64
	if cfg.Mode == ModeGeometric {
		var acc float64
		for i, name := range names {
			if weights[i] == 0 {
				continue
			}
			f := math.Max(clamp01(fv.Value(name)), logFloor)
			acc += (weights[i] / sum) * math.Log(f)
		}
		score = math.Exp(acc)
	} else {
		for i, name := range names {
			score += (weights[i] / sum) * clamp01(fv.Value(name))
		}
	}
	return clamp01(score)
}

// Evaluate runs the whole pipeline for one name: normalization, mora
// segmentation, feature extraction and score composition. It is a
// pure function of (name, cfg) and never fails; an input that
// normalizes to nothing yields M=0 with the sentinel zero vector.
func Evaluate(name string, cfg Config) Result {
	kana := NormalizeKana(name)
	moras := Segment(kana)
	features := Extract(moras, kana, cfg)
	res := Result{
		Name:     name,
		Kana:     kana,
		Moras:    features.Moras,
		M:        features.M,
		Features: features,
		Score:    Compose(features, cfg),
	}
	if cfg.Advanced {
		adv := AnalyzeAdvanced(kana, moras)
		res.Advanced = &adv
	}
	return res
}
