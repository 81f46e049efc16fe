// Package config provides configuration management for the sticker
// generator.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion of the template mapping to a model.TemplateSet
//
// # Default Settings
//
// The defaults reproduce the fixed layout of the generator:
//
//	settings := config.DefaultSettings()
//	// Writes to ./out/<Month>/<Day>.png at 507x512
//	// Templates in ./templates, font ./vazir.ttf
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Fields missing from the file keep their default values.
package config
