package icongen

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestIcon is one entry of the "icons" member of a web app manifest.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Manifest is the fragment of manifest.json listing the generated icons.
type Manifest struct {
	Icons []ManifestIcon `json:"icons"`
}

// NewManifest lists icons as written by a renderer of format f.
// The generic icons are usable as maskable icons, the platform variants are not.
func NewManifest(prefix string, icons []Icon, f Format) Manifest {
	m := Manifest{Icons: make([]ManifestIcon, 0, len(icons))}
	for _, ic := range icons {
		purpose := "any maskable"
		if ic.Name != "" {
			purpose = "any"
		}
		m.Icons = append(m.Icons, ManifestIcon{
			Src:     prefix + ic.Filename(f),
			Sizes:   ic.Dimensions(),
			Type:    f.MimeType(),
			Purpose: purpose,
		})
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
