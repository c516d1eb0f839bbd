package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a SceneConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &SceneConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		config.ResolvePaths(resolver)
		if errs := config.ValidateFiles(resolver); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile stamps the metadata of config and writes it to a YAML file
func SaveToFile(config *SceneConfig, path string) error {
	NewMetadataCollector().PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ValidateFiles reports file references that do not exist
func (c *SceneConfig) ValidateFiles(resolver *PathResolver) []ValidationError {
	var errors []ValidationError
	if c.Materials.FromFile != "" && !resolver.FileExists(c.Materials.FromFile) {
		errors = append(errors, ValidationError{
			Field:   "materials.from_file",
			Message: fmt.Sprintf("file not found: %s", c.Materials.FromFile),
		})
	}
	for i, m := range c.Meshes {
		if m.Shape == ShapeFile && m.Path != "" && !resolver.FileExists(m.Path) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("meshes.%d.path", i),
				Message: fmt.Sprintf("file not found: %s", m.Path),
			})
		}
	}
	return errors
}

// ResolvePaths makes every relative file reference absolute
func (c *SceneConfig) ResolvePaths(resolver *PathResolver) {
	if c.Materials.FromFile != "" {
		c.Materials.FromFile = resolver.ResolvePath(c.Materials.FromFile)
	}

	for i := range c.Meshes {
		if c.Meshes[i].Path != "" {
			c.Meshes[i].Path = resolver.ResolvePath(c.Meshes[i].Path)
		}
	}
}
