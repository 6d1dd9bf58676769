package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical render defaults file.
// This is the single source of truth for all default drawing values.
const DefaultConfigPath = "config/render.defaults.json"

// RenderConfig represents the root configuration for drawing and
// meshing parameters. The schema matches the build command's
// -render-config flag so the same JSON drives both single-view and
// composite output.
type RenderConfig struct {
	// Drawing params
	Width       *int     `json:"width,omitempty"`        // canvas width in pixels
	Height      *int     `json:"height,omitempty"`       // canvas height in pixels
	Margin      *float64 `json:"margin,omitempty"`       // clear border in pixels
	StrokeWidth *float64 `json:"stroke_width,omitempty"` // edge weight in points
	ShowAxes    *bool    `json:"show_axes,omitempty"`

	// Mesh params
	MeshCells *int `json:"mesh_cells,omitempty"` // marching cubes resolution
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyRenderConfig returns a RenderConfig with all fields set to nil.
// The Get* methods supply defaults for nil fields, so an empty config
// behaves like the canonical defaults file.
func EmptyRenderConfig() *RenderConfig {
	return &RenderConfig{}
}

// LoadRenderConfig loads a RenderConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	// Validate the config file path.
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON into empty config. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptyRenderConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical render defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *RenderConfig {
	// Try paths from current dir up to repo root
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadRenderConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *RenderConfig) Validate() error {
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", *c.Height)
	}
	if c.Margin != nil && *c.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %f", *c.Margin)
	}
	if c.StrokeWidth != nil && *c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %f", *c.StrokeWidth)
	}
	if c.MeshCells != nil {
		if *c.MeshCells < 1 || *c.MeshCells > 4096 {
			return fmt.Errorf("mesh_cells must be between 1 and 4096, got %d", *c.MeshCells)
		}
	}

	// The margin must leave some drawable area on the canvas.
	if c.Margin != nil && c.Width != nil {
		if 2**c.Margin >= float64(*c.Width) {
			return fmt.Errorf("margin %f leaves no drawable width on a %d pixel canvas", *c.Margin, *c.Width)
		}
	}
	if c.Margin != nil && c.Height != nil {
		if 2**c.Margin >= float64(*c.Height) {
			return fmt.Errorf("margin %f leaves no drawable height on a %d pixel canvas", *c.Margin, *c.Height)
		}
	}

	return nil
}

// GetWidth returns the width value or the default.
func (c *RenderConfig) GetWidth() int {
	if c.Width == nil {
		return 800
	}
	return *c.Width
}

// GetHeight returns the height value or the default.
func (c *RenderConfig) GetHeight() int {
	if c.Height == nil {
		return 800
	}
	return *c.Height
}

// GetMargin returns the margin value or the default.
func (c *RenderConfig) GetMargin() float64 {
	if c.Margin == nil {
		return 50
	}
	return *c.Margin
}

// GetStrokeWidth returns the stroke_width value or the default.
func (c *RenderConfig) GetStrokeWidth() float64 {
	if c.StrokeWidth == nil {
		return 2
	}
	return *c.StrokeWidth
}

// GetShowAxes returns the show_axes value or the default.
func (c *RenderConfig) GetShowAxes() bool {
	if c.ShowAxes == nil {
		return true
	}
	return *c.ShowAxes
}

// GetMeshCells returns the mesh_cells value or the default.
func (c *RenderConfig) GetMeshCells() int {
	if c.MeshCells == nil {
		return 300
	}
	return *c.MeshCells
}
