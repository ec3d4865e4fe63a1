package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// SectionInfo is a serializable keybinding section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is a serializable keybinding.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	ConfigKey   string   `json:"config_key"`
}

// Export describes km's sections, including the config key that overrides
// each binding under tui.keybindings.
func Export(km SectionedKeyMap) []SectionInfo {
	configKeys := make(map[string]string)
	extractConfigKeys(reflect.ValueOf(km), configKeys)

	sections := km.Sections()
	result := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		info := SectionInfo{Name: s.Name, Bindings: make([]BindingInfo, 0, len(s.Bindings))}
		for _, b := range s.Bindings {
			info.Bindings = append(info.Bindings, BindingInfo{
				Keys:        b.Keys(),
				Description: b.Help().Desc,
				Enabled:     b.Enabled(),
				ConfigKey:   configKeys[b.Help().Desc],
			})
		}
		result = append(result, info)
	}
	return result
}

// extractConfigKeys maps each binding's help description to its config key.
func extractConfigKeys(v reflect.Value, m map[string]string) {
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	bindingType := reflect.TypeOf(key.Binding{})
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		val := v.Field(i)

		if field.Anonymous {
			extractConfigKeys(val, m)
			continue
		}
		if field.Type != bindingType || !val.CanInterface() {
			continue
		}
		if b := val.Interface().(key.Binding); b.Help().Desc != "" {
			m[b.Help().Desc] = camelToSnake(field.Name)
		}
	}
}
