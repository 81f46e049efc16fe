package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/jalali-stickers/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputDir    string `json:"output_dir"`
	OutputWidth  int    `json:"output_width"`
	OutputHeight int    `json:"output_height"`

	// Regenerate even when OutputDir already exists
	Force bool `json:"force"`

	// Input assets
	Templates map[string]string `json:"templates"` // season "1".."4" -> image path
	FontPath  string            `json:"font_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:    "out",
		OutputWidth:  507,
		OutputHeight: 512,

		Force: false,

		Templates: map[string]string{
			"1": filepath.Join("templates", "bahaar.png"),
			"2": filepath.Join("templates", "tabestoon.png"),
			"3": filepath.Join("templates", "paeiz.png"),
			"4": filepath.Join("templates", "zemestoon.png"),
		},
		FontPath: "vazir.ttf",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that would otherwise only fail halfway
// through a run.
func (s *Settings) Validate() error {
	if s.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if s.OutputWidth <= 0 || s.OutputHeight <= 0 {
		return fmt.Errorf("output size %dx%d must be positive", s.OutputWidth, s.OutputHeight)
	}
	if s.FontPath == "" {
		return fmt.Errorf("font_path must not be empty")
	}
	if _, err := s.TemplateSet(); err != nil {
		return err
	}
	return nil
}

// TemplateSet converts the template mapping to a model.TemplateSet.
func (s *Settings) TemplateSet() (model.TemplateSet, error) {
	return model.NewTemplateSet(s.Templates)
}
