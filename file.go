package json5pp

import (
	"fmt"
	"os"
	"path/filepath"
)

// ParseFile parses the file at path as a single top-level value.
func ParseFile(path string, rules RuleSet, ms ...Manipulator) (*Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, rules, ms...)
}

// WriteFile stringifies v to the file at path, creating parent directories
// as needed.
func WriteFile(path string, v *Value, rules RuleSet, ms ...Manipulator) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	text, err := Stringify(v, rules, ms...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
