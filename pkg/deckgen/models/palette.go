package models

// Color is an ARGB hex color string (e.g. "FF72B01D").
type Color string

// Umuganda brand palette.
const (
	// Onyx is the title slide background. #0d0a0b
	Onyx Color = "FF0D0A0B"
	// CharcoalBlue is used for muted footer text. #454955
	CharcoalBlue Color = "FF454955"
	// LavenderMist is the content slide background. #f3eff5
	LavenderMist Color = "FFF3EFF5"
	// LimeMoss is the accent color for titles and title bars. #72b01d
	LimeMoss Color = "FF72B01D"
	// Green is the secondary accent color. #3f7d20
	Green Color = "FF3F7D20"
	// White is used for title bar text.
	White Color = "FFFFFFFF"
)
