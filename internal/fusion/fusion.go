// Package fusion blends phrase-level similarity, per-skill-type similarity,
// and a learned regression score into one bounded final score.
package fusion

import "math"

// Config holds the fusion weights and the boost/clamp parameters. The
// historical pipeline generations hardcoded slightly different values in
// each script; here they are injected so each generation is just a named
// preset.
type Config struct {
	// Weighted-blend coefficients. Applied to the max phrase similarity
	// (fraction), hard-skill average (percentage/100), and soft-skill
	// average (percentage/100) respectively.
	MaxPhraseWeight float64 `json:"max_phrase_weight"`
	HardSkillWeight float64 `json:"hard_skill_weight"`
	SoftSkillWeight float64 `json:"soft_skill_weight"`

	// Sigmoid remap parameters. Raw cosine similarities cluster around
	// 0.3-0.7 regardless of true match quality; the remap stretches that
	// band into a more discriminative range with a realistic floor and
	// ceiling.
	BoostFloor     float64 `json:"boost_floor"`
	BoostSpan      float64 `json:"boost_span"`
	BoostSteepness float64 `json:"boost_steepness"`
	BoostMidpoint  float64 `json:"boost_midpoint"`

	// ClampUpperFactor scales the upper clamp bound (max phrase
	// similarity). The canonical policy is 1.0; the superseded pipeline
	// generation used 1.2 with a separate hard cap at the max, which is
	// kept only as a regression preset.
	ClampUpperFactor float64 `json:"clamp_upper_factor"`
}

// DefaultConfig returns the consolidated fusion parameters.
func DefaultConfig() Config {
	return Config{
		MaxPhraseWeight:  0.5,
		HardSkillWeight:  0.3,
		SoftSkillWeight:  0.2,
		BoostFloor:       0.2,
		BoostSpan:        0.8,
		BoostSteepness:   14,
		BoostMidpoint:    0.65,
		ClampUpperFactor: 1.0,
	}
}

// Inputs are the similarity signals feeding the blend. Phrase similarities
// are fractions in [0,1]; skill averages are percentages in [0,100], as
// produced by the similarity engine.
type Inputs struct {
	AvgPhrase    float64
	MaxPhrase    float64
	HardSkillAvg float64
	SoftSkillAvg float64
}

// Boost applies the nonlinear sigmoid remap to a weighted blend value. At
// the midpoint it returns exactly BoostFloor + BoostSpan/2.
func Boost(cfg Config, weighted float64) float64 {
	raw := 1 / (1 + math.Exp(-cfg.BoostSteepness*(weighted-cfg.BoostMidpoint)))
	return cfg.BoostFloor + cfg.BoostSpan*raw
}

// Fuse computes the final fused score as a fraction in [0,1]. The result is
// clamped so it never claims better alignment than the best single phrase
// match, nor worse than the average phrase alignment:
// AvgPhrase <= result <= MaxPhrase for every input combination.
func Fuse(cfg Config, in Inputs) float64 {
	weighted := in.MaxPhrase*cfg.MaxPhraseWeight +
		(in.HardSkillAvg/100)*cfg.HardSkillWeight +
		(in.SoftSkillAvg/100)*cfg.SoftSkillWeight

	final := Boost(cfg, weighted)

	upper := in.MaxPhrase * cfg.ClampUpperFactor
	if final > upper {
		final = upper
	}
	if final < in.AvgPhrase {
		final = in.AvgPhrase
	}
	// The scaled bound never beats the best phrase match.
	if final > in.MaxPhrase {
		final = in.MaxPhrase
	}
	return final
}

// RegressionFeatures assembles the feature vector for the auxiliary
// regression model. The layout is fixed by the model's training data:
// [avg_phrase*100, hard_skill_avg, max_phrase*100], percentages rounded to
// two decimals.
func RegressionFeatures(in Inputs) []float64 {
	return []float64{
		round2(in.AvgPhrase * 100),
		in.HardSkillAvg,
		round2(in.MaxPhrase * 100),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
