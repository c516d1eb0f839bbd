package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateColor(field string, c [3]int) []ValidationError {
	for _, v := range c {
		if v < 0 || v > 255 {
			return []ValidationError{{
				Field:   field,
				Message: "channels must be between 0 and 255",
			}}
		}
	}
	return nil
}

func validateMaterialRef(field, name string, materials *Materials) []ValidationError {
	if name == "" {
		return []ValidationError{{
			Field:   field,
			Message: "material is required",
		}}
	}
	if !materials.HasMaterial(name) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("references undefined material '%s'", name),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var names []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			names = append(names, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Viewport.Validate()...)
	errors = append(errors, c.Materials.Validate()...)
	errors = append(errors, c.Camera.Validate()...)
	for i := range c.Lights {
		errors = append(errors, c.Lights[i].Validate(fmt.Sprintf("lights.%d", i))...)
	}
	for i := range c.Meshes {
		errors = append(errors, c.Meshes[i].Validate(fmt.Sprintf("meshes.%d", i), &c.Materials)...)
	}
	for i := range c.Spheres {
		errors = append(errors, c.Spheres[i].Validate(fmt.Sprintf("spheres.%d", i), &c.Materials)...)
	}
	errors = append(errors, c.validateIDs()...)
	errors = append(errors, c.Controls.Validate(c)...)
	return errors
}

// Validate accepts a zero viewport, which means the engine defaults.
func (v *Viewport) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("viewport.width", float64(v.Width))...)
	errors = append(errors, validateNonNegative("viewport.height", float64(v.Height))...)
	errors = append(errors, validateNonNegative("viewport.scale", float64(v.Scale))...)
	errors = append(errors, validateNonNegative("viewport.tps", float64(v.TPS))...)
	if (v.Width == 0) != (v.Height == 0) {
		errors = append(errors, ValidationError{
			Field:   "viewport",
			Message: "width and height must be set together",
		})
	}
	return errors
}

func (m *Materials) Validate() []ValidationError {
	var errors []ValidationError

	if m.Inline == nil && m.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "materials",
			Message: "either inline or from_file must be specified",
		})
		return errors
	}

	for name, material := range m.Inline {
		prefix := fmt.Sprintf("materials.inline.%s", name)
		errors = append(errors, validateColor(prefix+".color", material.Color)...)
		errors = append(errors, validateInRange(prefix+".transparency", material.Transparency, 0, 1)...)
		errors = append(errors, validateInRange(prefix+".reflectivity", material.Reflectivity, 0, 1)...)
	}

	return errors
}

func (c *Camera) Validate() []ValidationError {
	return validateInRange("camera.fov", float64(c.FOV), 1, 179)
}

func (l *Light) Validate(field string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative(field+".intensity", l.Intensity)...)
	if l.Color != nil {
		errors = append(errors, validateColor(field+".color", *l.Color)...)
	}
	return errors
}

func (m *Mesh) Validate(field string, materials *Materials) []ValidationError {
	var errors []ValidationError

	switch m.Shape {
	case ShapeCube, ShapePlane:
		errors = append(errors, validatePositive(field+".size", m.Size)...)
	case ShapeFile:
		if m.Path == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".path",
				Message: "mesh path is required",
			})
		} else if ext := strings.ToLower(filepath.Ext(m.Path)); ext != ".obj" && ext != ".stl" && ext != ".3mf" {
			errors = append(errors, ValidationError{
				Field:   field + ".path",
				Message: fmt.Sprintf("unsupported mesh format %q", ext),
			})
		}
		errors = append(errors, validateNonNegative(field+".scale", m.Scale)...)
	default:
		errors = append(errors, ValidationError{
			Field:   field + ".shape",
			Message: fmt.Sprintf("must be one of %s, %s or %s", ShapeCube, ShapePlane, ShapeFile),
		})
	}

	if m.Shape == ShapeFile && m.KeepFileMaterials && m.Material == "" {
		// file colors stand in for a missing material
		return errors
	}
	errors = append(errors, validateMaterialRef(field+".material", m.Material, materials)...)
	if m.AccentMaterial != "" {
		errors = append(errors, validateMaterialRef(field+".accent_material", m.AccentMaterial, materials)...)
	}

	return errors
}

func (s *Sphere) Validate(field string, materials *Materials) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive(field+".radius", s.Radius)...)
	errors = append(errors, validateMaterialRef(field+".material", s.Material, materials)...)
	return errors
}

// validateIDs rejects duplicate ids within a kind, so lookups are
// unambiguous.
func (c *SceneConfig) validateIDs() []ValidationError {
	var errors []ValidationError
	check := func(kind string, ids []string) {
		seen := map[string]bool{}
		for i, id := range ids {
			if id == "" {
				continue
			}
			if seen[id] {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s.%d.id", kind, i),
					Message: fmt.Sprintf("duplicate id '%s'", id),
				})
			}
			seen[id] = true
		}
	}

	lights := make([]string, len(c.Lights))
	for i, l := range c.Lights {
		lights[i] = l.ID
	}
	meshes := make([]string, len(c.Meshes))
	for i, m := range c.Meshes {
		meshes[i] = m.ID
	}
	spheres := make([]string, len(c.Spheres))
	for i, s := range c.Spheres {
		spheres[i] = s.ID
	}
	check("lights", lights)
	check("meshes", meshes)
	check("spheres", spheres)
	return errors
}

func (ct *Controls) Validate(c *SceneConfig) []ValidationError {
	var errors []ValidationError

	for i, id := range ct.Lights {
		if !c.hasLight(id) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("controls.lights.%d", i),
				Message: fmt.Sprintf("references undefined light '%s'", id),
			})
		}
	}
	for i, id := range ct.Spin {
		if !c.hasMesh(id) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("controls.spin.%d", i),
				Message: fmt.Sprintf("references undefined mesh '%s'", id),
			})
		}
	}

	errors = append(errors, validateNonNegative("controls.yaw_step", ct.YawStep)...)
	errors = append(errors, validateNonNegative("controls.roll_step", ct.RollStep)...)
	errors = append(errors, validateNonNegative("controls.fov_step", float64(ct.FOVStep))...)
	errors = append(errors, validateNonNegative("controls.light_step", ct.LightStep)...)
	errors = append(errors, validateNonNegative("controls.spin_step", ct.SpinStep)...)

	return errors
}

func (c *SceneConfig) hasLight(id string) bool {
	for _, l := range c.Lights {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (c *SceneConfig) hasMesh(id string) bool {
	for _, m := range c.Meshes {
		if m.ID == id {
			return true
		}
	}
	return false
}
