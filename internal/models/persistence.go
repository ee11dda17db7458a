package models

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var defaultContent embed.FS

// DefaultCatalog loads the catalog shipped with the game.
func DefaultCatalog() (*Catalog, error) {
	sub, err := fs.Sub(defaultContent, "content")
	if err != nil {
		return nil, err
	}
	return LoadCatalog(sub)
}

// LoadCatalogDir loads a catalog from a content directory on disk.
func LoadCatalogDir(dir string) (*Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	return LoadCatalog(os.DirFS(dir))
}

// LoadCatalog reads catalog.yaml, guardians.yaml, items.yaml and skills.yaml
// from fsys and validates the result.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	var c Catalog

	// catalog.yaml holds the title, starting skill and area order
	if err := readYAML(fsys, "catalog.yaml", &c); err != nil {
		return nil, err
	}

	var guardians struct {
		Guardians []Guardian `yaml:"guardians"`
	}
	if err := readYAML(fsys, "guardians.yaml", &guardians); err != nil {
		return nil, err
	}
	c.Guardians = guardians.Guardians

	var items struct {
		Items []Item `yaml:"items"`
	}
	if err := readYAML(fsys, "items.yaml", &items); err != nil {
		return nil, err
	}
	c.Items = items.Items

	var skills struct {
		Skills []Skill `yaml:"skills"`
	}
	if err := readYAML(fsys, "skills.yaml", &skills); err != nil {
		return nil, err
	}
	c.Skills = skills.Skills

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

func readYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
