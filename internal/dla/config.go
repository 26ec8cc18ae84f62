package dla

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("dla: invalid config")

// Config controls the canvas, the confinement ellipse and the growth policy.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	PixelSize    int

	// SemiAxisFraction scales the grid dimensions into ellipse semi-axes.
	SemiAxisFraction float64
	// MinBranchLength is the path length a branch must exceed to commit.
	MinBranchLength int
	// Levels are the growth intensities, processed in order.
	Levels []uint8
	// TraceValue marks sampled start cells. Only values above it count as
	// structure for contact.
	TraceValue uint8
	// NucleusValue is planted in the center cell on reset.
	NucleusValue uint8
	// MaxAttempts caps the retries per level. Zero retries forever.
	MaxAttempts int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:      700,
		CanvasHeight:     500,
		PixelSize:        6,
		SemiAxisFraction: 1 / 2.4,
		MinBranchLength:  10,
		Levels:           []uint8{220, 170, 120, 70},
		TraceValue:       20,
		NucleusValue:     255,
		Seed:             1337,
	}
}

// Columns returns the number of grid columns covered by the canvas.
func (c Config) Columns() int {
	if c.PixelSize <= 0 {
		return 0
	}
	return c.CanvasWidth / c.PixelSize
}

// Rows returns the number of grid rows covered by the canvas.
func (c Config) Rows() int {
	if c.PixelSize <= 0 {
		return 0
	}
	return c.CanvasHeight / c.PixelSize
}

// Validate reports whether the configuration can drive a generator without
// touching cells outside the grid.
func (c Config) Validate() error {
	switch {
	case c.PixelSize <= 0:
		return fmt.Errorf("%w: pixel size %d", ErrInvalidConfig, c.PixelSize)
	case c.Columns() < 3 || c.Rows() < 3:
		return fmt.Errorf("%w: canvas %dx%d yields a %dx%d grid", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight, c.Columns(), c.Rows())
	case c.SemiAxisFraction <= 0:
		return fmt.Errorf("%w: semi-axis fraction %g", ErrInvalidConfig, c.SemiAxisFraction)
	case c.MinBranchLength < 0:
		return fmt.Errorf("%w: min branch length %d", ErrInvalidConfig, c.MinBranchLength)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, c.MaxAttempts)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: no growth levels", ErrInvalidConfig)
	case c.NucleusValue <= c.TraceValue:
		return fmt.Errorf("%w: nucleus %d not above trace %d", ErrInvalidConfig, c.NucleusValue, c.TraceValue)
	}
	for _, lvl := range c.Levels {
		if lvl <= c.TraceValue {
			return fmt.Errorf("%w: level %d not above trace %d", ErrInvalidConfig, lvl, c.TraceValue)
		}
	}
	e := NewEllipse(c.Columns(), c.Rows(), c.SemiAxisFraction)
	if !e.HasMargin() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoMargin)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["canvas_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CanvasWidth = parsed
		}
	}
	if v, ok := cfg["canvas_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CanvasHeight = parsed
		}
	}
	if v, ok := cfg["pixel"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PixelSize = parsed
		}
	}
	if v, ok := cfg["fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.SemiAxisFraction = parsed
		}
	}
	if v, ok := cfg["min_len"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MinBranchLength = parsed
		}
	}
	if v, ok := cfg["levels"]; ok {
		if parsed, err := ParseLevels(v); err == nil && len(parsed) > 0 {
			c.Levels = parsed
		}
	}
	if v, ok := cfg["trace"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.TraceValue = uint8(parsed)
		}
	}
	if v, ok := cfg["nucleus"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.NucleusValue = uint8(parsed)
		}
	}
	if v, ok := cfg["max_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxAttempts = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseLevels parses a comma separated list of intensities such as
// "220,170,120,70".
func ParseLevels(s string) ([]uint8, error) {
	var levels []uint8
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse level %q: %w", field, err)
		}
		levels = append(levels, uint8(v))
	}
	return levels, nil
}

// FormatLevels is the inverse of ParseLevels.
func FormatLevels(levels []uint8) string {
	parts := make([]string, len(levels))
	for i, lvl := range levels {
		parts[i] = strconv.Itoa(int(lvl))
	}
	return strings.Join(parts, ",")
}
