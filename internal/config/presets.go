package config

import (
	"fmt"
	"sort"

	"github.com/coltonk1/trackify-jobs/internal/fusion"
)

// Named fusion presets. The canonical preset is the consolidated scoring
// policy; legacy reproduces the superseded pipeline generation that scaled
// the upper clamp bound, kept for output comparisons against historical
// score archives.
const (
	PresetCanonical = "canonical"
	PresetLegacy    = "legacy"
)

func presets() map[string]fusion.Config {
	canonical := fusion.DefaultConfig()

	legacy := fusion.DefaultConfig()
	legacy.ClampUpperFactor = 1.2

	return map[string]fusion.Config{
		PresetCanonical: canonical,
		PresetLegacy:    legacy,
	}
}

// FusionPreset resolves a preset name. Empty selects the canonical preset.
func FusionPreset(name string) (fusion.Config, error) {
	if name == "" {
		name = PresetCanonical
	}
	cfg, ok := presets()[name]
	if !ok {
		return fusion.Config{}, fmt.Errorf("config error: unknown preset %q (available: %v)", name, PresetNames())
	}
	return cfg, nil
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	all := presets()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
