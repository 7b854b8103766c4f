// Package llm holds the Gemini client and model-tier configuration used by
// the LLM-assisted skill extraction strategy.
package llm

// ModelTier selects a capability level rather than a concrete model name,
// so callers describe the task and configuration decides the model.
type ModelTier string

const (
	// TierLite serves classification and extraction tasks.
	TierLite ModelTier = "lite"
	// TierStandard serves structured-output tasks that need more reasoning.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the stock Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel resolves a tier to a model name, falling back to lite when the
// requested tier has no mapping.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierLite]
}
