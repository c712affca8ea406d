package model

import "fmt"

// BasePatternInput ...
type BasePatternInput struct {
	StartX int `json:"startX"`
	StartZ int `json:"startZ"`
	Width  int `json:"width"`
	Length int `json:"length"`
	Color  int `json:"color"`
}

// Normalize fills in defaults for zero-valued fields.
func (p *BasePatternInput) Normalize() {
	if p.Width == 0 {
		p.Width = 8
	}
	if p.Length == 0 {
		p.Length = 8
	}
	if p.Color == 0 {
		p.Color = 71 // light bluish gray
	}
}

// Validate ...
func (p BasePatternInput) Validate() error {
	if p.Width < 1 || p.Length < 1 {
		return fmt.Errorf("base width and length must be positive")
	}
	return nil
}

// WallPatternInput ...
type WallPatternInput struct {
	StartX    int    `json:"startX"`
	StartZ    int    `json:"startZ"`
	StartY    int    `json:"startY"`
	Length    int    `json:"length"`
	Height    int    `json:"height"`
	Direction string `json:"direction"`
	Style     string `json:"style"`
	Color     int    `json:"color"`
}

// Normalize fills in defaults for zero-valued fields.
func (p *WallPatternInput) Normalize() {
	if p.Length == 0 {
		p.Length = 8
	}
	if p.Height == 0 {
		p.Height = 9 // three brick courses
	}
	if p.Direction == "" {
		p.Direction = "x"
	}
	if p.Style == "" {
		p.Style = "solid"
	}
	if p.Color == 0 {
		p.Color = 4 // red
	}
}

// Validate ...
func (p WallPatternInput) Validate() error {
	if p.Length < 2 {
		return fmt.Errorf("wall length must be at least 2 studs")
	}
	if p.Height < 1 {
		return fmt.Errorf("wall height must be positive")
	}
	if p.Direction != "x" && p.Direction != "z" {
		return fmt.Errorf("wall direction must be \"x\" or \"z\"")
	}
	switch p.Style {
	case "solid", "window", "castle":
	default:
		return fmt.Errorf("unknown wall style %q", p.Style)
	}
	return nil
}

// ColumnPatternInput ...
type ColumnPatternInput struct {
	X         int `json:"x"`
	Z         int `json:"z"`
	Height    int `json:"height"`
	Thickness int `json:"thickness"`
	Color     int `json:"color"`
}

// Normalize fills in defaults for zero-valued fields.
func (p *ColumnPatternInput) Normalize() {
	if p.Height == 0 {
		p.Height = 12 // four brick courses
	}
	if p.Thickness == 0 {
		p.Thickness = 2
	}
	if p.Color == 0 {
		p.Color = 15 // white
	}
}

// Validate ...
func (p ColumnPatternInput) Validate() error {
	if p.Height < 1 {
		return fmt.Errorf("column height must be positive")
	}
	return nil
}

// WingPatternInput ...
type WingPatternInput struct {
	StartX     int `json:"startX"`
	StartZ     int `json:"startZ"`
	StartY     int `json:"startY"`
	Length     int `json:"length"`
	SweepAngle int `json:"sweepAngle"`
	Thickness  int `json:"thickness"`
	Color      int `json:"color"`
}

// Normalize fills in defaults for zero-valued fields.
func (p *WingPatternInput) Normalize() {
	if p.Length == 0 {
		p.Length = 8
	}
	if p.SweepAngle == 0 {
		p.SweepAngle = 15
	}
	if p.Thickness == 0 {
		p.Thickness = 1
	}
	if p.Color == 0 {
		p.Color = 1 // blue
	}
}

// Validate ...
func (p WingPatternInput) Validate() error {
	if p.Length < 1 {
		return fmt.Errorf("wing length must be positive")
	}
	if p.SweepAngle < 0 || p.SweepAngle > 45 {
		return fmt.Errorf("wing sweep angle must be between 0 and 45 degrees")
	}
	if p.Thickness < 1 {
		return fmt.Errorf("wing thickness must be positive")
	}
	return nil
}
