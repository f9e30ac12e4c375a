package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
)

// SuffixLoader handles loading pattern suffix assets from files
type SuffixLoader struct{}

// NewSuffixLoader creates a new suffix loader
func NewSuffixLoader() *SuffixLoader {
	return &SuffixLoader{}
}

// SuffixData represents the JSON structure of a pattern suffix asset
type SuffixData struct {
	Suffixes []string `json:"suffixes"`
}

// LoadFromFile loads an ordered pattern suffix list from a JSON file. The
// list replaces the built-in asset wholesale; order matters because query
// parameters are bound positionally.
func (sl *SuffixLoader) LoadFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open suffix file: %w", err)
	}
	defer file.Close()

	var data SuffixData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode suffix JSON: %w", err)
	}

	if len(data.Suffixes) == 0 {
		return nil, fmt.Errorf("suffix file %s contains no suffixes", filename)
	}

	return data.Suffixes, nil
}
