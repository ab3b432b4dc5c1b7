package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the ocean scene and its HUD.
const (
	ColorDefault   Color = iota
	ColorSwell           // Background wave layers
	ColorSurface         // Riding surface line
	ColorWater           // Water body below the surface
	ColorFoam            // Jump splash and crests
	ColorRider           // Player board
	ColorShell           // Collectible shells
	ColorWhirlpool       // Hazard whirlpools
	ColorHUD             // Score/lives/time text
	ColorAlert           // Hit flash and end overlays
	ColorDim             // Paused overlay and help text
)
