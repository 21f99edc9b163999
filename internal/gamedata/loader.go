package gamedata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadArt reads an embedded text file as lines, trailing whitespace removed.
func LoadArt(filename string) ([]string, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \r")
	}
	return lines, nil
}

// MustLoadArt reads an embedded text file, panicking on error.
// Use this for art that must be present for the game to function.
func MustLoadArt(filename string) []string {
	lines, err := LoadArt(filename)
	if err != nil {
		panic(err)
	}
	return lines
}
