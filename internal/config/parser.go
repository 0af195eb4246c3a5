package config

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseKV parses a key=value pair, attempting type inference for the value
func ParseKV(kvPair string) (string, any, error) {
	parts := strings.SplitN(kvPair, "=", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid format, expected key=value: %s", kvPair)
	}

	key := strings.TrimSpace(parts[0])
	if key == "" {
		return "", nil, fmt.Errorf("empty key in key=value pair")
	}

	valueStr := strings.TrimSpace(parts[1])

	// Integers first so "1" stays a number rather than a boolean
	if intVal, err := strconv.Atoi(valueStr); err == nil {
		return key, intVal, nil
	}

	if floatVal, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return key, floatVal, nil
	}

	if valueStr == "true" || valueStr == "false" {
		boolVal, _ := strconv.ParseBool(valueStr)
		return key, boolVal, nil
	}

	return key, valueStr, nil
}

// ParseDocument parses an inline YAML or JSON document.
func ParseDocument(doc string) (any, error) {
	var result any
	if err := yaml.Unmarshal([]byte(doc), &result); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return result, nil
}

// ParseFile reads and parses a YAML or JSON file
func ParseFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var result any
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid YAML in file %s: %w", path, err)
	}
	return result, nil
}

// ParseEnvWithPrefix collects PREFIX (a document) and PREFIX_* variables
// into a map keyed by the lower-cased suffix.
func ParseEnvWithPrefix(prefix string) map[string]any {
	values := make(map[string]any)

	if doc := os.Getenv(prefix); doc != "" {
		if parsed, err := ParseDocument(doc); err == nil {
			if m, ok := parsed.(map[string]any); ok {
				maps.Copy(values, m)
			}
		}
	}

	envPrefix := prefix + "_"
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		_, value, _ := ParseKV(key + "=" + parts[1])
		values[key] = value
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

// MergeMaps merges sources in order; later sources override earlier ones.
// Non-map sources are ignored.
func MergeMaps(sources ...any) map[string]any {
	result := make(map[string]any)
	for _, src := range sources {
		if m, ok := src.(map[string]any); ok {
			maps.Copy(result, m)
		}
	}
	return result
}

// Sources lists the places a settings map may come from, lowest precedence first.
type Sources struct {
	Base      map[string]any // section of the main config file
	EnvPrefix string
	File      string
	Document  string
	KV        []string
}

// Build merges all sources into one settings map.
// Precedence: base < env < file < document < key=value pairs.
func Build(src Sources) (map[string]any, error) {
	var layers []any

	if src.Base != nil {
		layers = append(layers, src.Base)
	}

	if src.EnvPrefix != "" {
		if env := ParseEnvWithPrefix(src.EnvPrefix); env != nil {
			layers = append(layers, env)
		}
	}

	if src.File != "" {
		fileValues, err := ParseFile(src.File)
		if err != nil {
			return nil, err
		}
		if _, ok := fileValues.(map[string]any); !ok {
			return nil, fmt.Errorf("config file %s must contain an object", src.File)
		}
		layers = append(layers, fileValues)
	}

	if src.Document != "" {
		docValues, err := ParseDocument(src.Document)
		if err != nil {
			return nil, err
		}
		if _, ok := docValues.(map[string]any); !ok {
			return nil, fmt.Errorf("inline config must be an object")
		}
		layers = append(layers, docValues)
	}

	if len(src.KV) > 0 {
		kv := make(map[string]any)
		for _, pair := range src.KV {
			key, value, err := ParseKV(pair)
			if err != nil {
				return nil, err
			}
			kv[key] = value
		}
		layers = append(layers, kv)
	}

	return MergeMaps(layers...), nil
}

// String returns the string value of key, formatting non-string scalars.
func String(values map[string]any, key string) (string, bool) {
	val, ok := values[key]
	if !ok || val == nil {
		return "", false
	}
	if s, ok := val.(string); ok {
		return s, true
	}
	return fmt.Sprint(val), true
}

// StringDefault returns the string value of key or def.
func StringDefault(values map[string]any, key, def string) string {
	if s, ok := String(values, key); ok && s != "" {
		return s
	}
	return def
}

// Bool returns the boolean value of key or def.
func Bool(values map[string]any, key string, def bool) bool {
	switch v := values[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Int returns the integer value of key or def.
func Int(values map[string]any, key string, def int) int {
	switch v := values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
