package config

// mergeConfigs merges override into base. Scalars override when set, lists
// replace wholesale, keybindings and extension sections merge per key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}

	if override.Source.Command != "" {
		result.Source.Command = override.Source.Command
	}
	if override.Source.Args != nil {
		result.Source.Args = override.Source.Args
	}
	if override.Source.UnitType != "" {
		result.Source.UnitType = override.Source.UnitType
	}
	if override.Source.Hide != nil {
		result.Source.Hide = override.Source.Hide
	}

	if override.Control.Command != "" {
		result.Control.Command = override.Control.Command
	}
	if override.Control.Privilege != nil {
		result.Control.Privilege = override.Control.Privilege
	}
	if override.Control.Confirm != nil {
		result.Control.Confirm = override.Control.Confirm
	}

	if override.TUI != nil {
		merged := &TUIConfig{Keybindings: KeybindingSectionConfig{}}
		if base.TUI != nil {
			for action, keys := range base.TUI.Keybindings {
				merged.Keybindings[action] = keys
			}
		}
		for action, keys := range override.TUI.Keybindings {
			merged.Keybindings[action] = keys
		}
		result.TUI = merged
	}

	if len(override.Extensions) > 0 {
		result.Extensions = make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			result.Extensions[key] = value
		}
		for key, value := range override.Extensions {
			baseMap, baseOK := result.Extensions[key].(map[string]interface{})
			overrideMap, overrideOK := value.(map[string]interface{})
			if baseOK && overrideOK {
				result.Extensions[key] = mergeMaps(baseMap, overrideMap)
				continue
			}
			result.Extensions[key] = value
		}
	}

	result.Sources = append(append([]string(nil), base.Sources...), override.Sources...)
	return &result
}

func mergeMaps(base, override map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(override))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range override {
		baseMap, baseOK := result[key].(map[string]interface{})
		overrideMap, overrideOK := value.(map[string]interface{})
		if baseOK && overrideOK {
			result[key] = mergeMaps(baseMap, overrideMap)
			continue
		}
		result[key] = value
	}
	return result
}
