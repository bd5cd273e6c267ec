package ellipsoid

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an Ellipsoid from a JSON file and validates it.
func Load(path string) (Ellipsoid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Ellipsoid{}, fmt.Errorf("open ellipsoid: %w", err)
	}
	defer f.Close()

	var e Ellipsoid
	if err := json.NewDecoder(f).Decode(&e); err != nil {
		return Ellipsoid{}, fmt.Errorf("decode ellipsoid: %w", err)
	}
	if err := e.Validate(); err != nil {
		return Ellipsoid{}, fmt.Errorf("load %s: %w", path, err)
	}
	return e, nil
}

// Save writes e to a JSON file.
func Save(path string, e Ellipsoid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ellipsoid: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode ellipsoid: %w", err)
	}
	return nil
}
