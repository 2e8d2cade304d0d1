package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for merge.
const (
	keySource  = "source"
	keyDisplay = "display"
	keyImages  = "images"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySource:  true,
	keyDisplay: true,
	keyImages:  true,
	keyLogging: true,
}

// MergeYAML loads a YAML file and merges it onto target. Within a known section,
// keys present in the file replace the target's values and absent keys are left
// unchanged; lists are replaced whole. Unknown top-level keys are ignored.
func MergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", overlayPath, err)
	}

	// Discover which top-level keys are present in the overlay.
	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, overlayPath, err)
		}
	}

	return nil
}

// decodeSection decodes node onto a copy of the matching section of target and
// stores the copy only when decoding succeeds.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySource:
		v := target.Source
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Source = v
	case keyDisplay:
		v := target.Display
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Display = v
	case keyImages:
		v := target.Images
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Images = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
