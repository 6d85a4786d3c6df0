package nameval

import "encoding/json"

// CompositionMode selects how feature values are combined into a score.
type CompositionMode string

const (
	// ModeSum combines features as a weighted arithmetic mean.
	ModeSum CompositionMode = "sum"
	// ModeGeometric combines features as a weighted geometric mean,
	// emphasising the single worst feature.
	ModeGeometric CompositionMode = "geometric"
)

// Recognized feature names. Extract produces exactly this set and
// Compose ignores weights for anything else.
const (
	FeatureLength       = "length"
	FeatureOpenness     = "openness"
	FeatureSpecialRatio = "specialRatio"
	FeatureYoonRatio    = "yoonRatio"
	FeatureVoicedRatio  = "voicedRatio"
	FeatureSemiVoiced   = "semiVoicedRatio"
	FeatureVowelDivers  = "vowelDiversity"
	FeaturePhonemeDens  = "phonemeDensity"
)

// FeatureNames returns the recognized feature names in display order.
func FeatureNames() []string {
	return []string{
		FeatureLength,
		FeatureOpenness,
		FeatureSpecialRatio,
		FeatureYoonRatio,
		FeatureVoicedRatio,
		FeatureSemiVoiced,
		FeatureVowelDivers,
		FeaturePhonemeDens,
	}
}

// Mora is a single phonetic timing unit of a segmented name.
// Surface spans of a segmentation concatenate back to the exact
// normalized input. Moras are immutable once emitted.
type Mora struct {
	Surface string `json:"surface"`
	Vowel   string `json:"vowel,omitempty"` // "a".."o", empty for ッ/ン
	Special bool   `json:"special,omitempty"`
	Yoon    bool   `json:"yoon,omitempty"`
}

// FeatureVector maps each recognized feature name to a value in [0,1].
// Higher always means easier to pronounce. M and Moras are diagnostic
// only and never consulted by Compose.
type FeatureVector struct {
	Values map[string]float64 `json:"values"`
	M      int                `json:"m"`
	Moras  []string           `json:"moras"`
}

// Value returns the named feature or 0 when absent.
func (fv FeatureVector) Value(name string) float64 {
	return fv.Values[name]
}

// Result holds the full evaluation output for one name.
type Result struct {
	Name     string          `json:"name"`
	Kana     string          `json:"kana"`
	Moras    []string        `json:"moras"`
	M        int             `json:"m"`
	Features FeatureVector   `json:"features"`
	Score    float64         `json:"score"`
	Advanced *AdvancedScores `json:"advanced,omitempty"`
}

// Config aggregates the scoring parameters persisted to config.json
// (or a weights YAML). It is treated as immutable once handed to a
// Service; evaluations never mutate it.
type Config struct {
	Weights  map[string]float64 `json:"weights" yaml:"weights"`
	Mode     CompositionMode    `json:"mode" yaml:"mode"`
	LowMora  int                `json:"lowMora" yaml:"low_mora"`
	HighMora int                `json:"highMora" yaml:"high_mora"`
	Sigma    float64            `json:"sigma" yaml:"sigma"`
	Advanced bool               `json:"advanced" yaml:"advanced"`
	Workers  int                `json:"workers" yaml:"workers"`
}

// DefaultWeights returns the standard (plane) weight model.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		FeatureLength:       0.20,
		FeatureOpenness:     0.20,
		FeatureSpecialRatio: 0.15,
		FeatureYoonRatio:    0.15,
		FeatureVoicedRatio:  0.15,
		FeatureSemiVoiced:   0.00,
		FeatureVowelDivers:  0.10,
		FeaturePhonemeDens:  0.05,
	}
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Weights == nil {
		c.Weights = DefaultWeights()
	}
	if c.Mode == "" {
		c.Mode = ModeSum
	}
	if c.LowMora <= 0 {
		c.LowMora = 2
	}
	if c.HighMora <= 0 {
		c.HighMora = 4
	}
	if c.HighMora < c.LowMora {
		c.HighMora = c.LowMora
	}
	if c.Sigma <= 0 {
		c.Sigma = 1.2
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
}
