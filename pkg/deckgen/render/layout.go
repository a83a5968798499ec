// Package render writes a deck model to PowerPoint format using GoPPT.
package render

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
// PowerPoint uses EMU for internal coordinate representation.
const EMUPerInch = 914400

// InchesToEMU converts a length in inches to EMU.
func InchesToEMU(inches float64) int64 {
	return int64(inches * EMUPerInch)
}

// Page geometry: classic 4:3 deck, 10 x 7.5 inches.
const (
	slideWidth  = int64(10.0 * EMUPerInch)
	slideHeight = int64(7.5 * EMUPerInch)
)

// Title slide boxes (EMU).
const (
	titleBoxX = int64(0.5 * EMUPerInch)
	titleBoxY = int64(2.5 * EMUPerInch)
	titleBoxW = int64(9.0 * EMUPerInch)
	titleBoxH = int64(1.5 * EMUPerInch)

	subtitleBoxY = int64(4.2 * EMUPerInch)
	subtitleBoxH = int64(1.5 * EMUPerInch)

	footerBoxY = int64(6.8 * EMUPerInch)
	footerBoxH = int64(0.5 * EMUPerInch)
)

// Content slide boxes (EMU).
const (
	contentBarH = int64(1.0 * EMUPerInch)

	contentBodyX = int64(0.75 * EMUPerInch)
	contentBodyY = int64(1.5 * EMUPerInch)
	contentBodyW = int64(8.5 * EMUPerInch)
	contentBodyH = int64(5.5 * EMUPerInch)
)

// Two-column slide boxes (EMU).
const (
	twoColBarH = int64(0.8 * EMUPerInch)

	twoColY = int64(1.2 * EMUPerInch)
	twoColH = int64(6.0 * EMUPerInch)

	leftColX = int64(0.5 * EMUPerInch)
	leftColW = int64(4.5 * EMUPerInch)

	rightColX = int64(5.2 * EMUPerInch)
	rightColW = int64(4.3 * EMUPerInch)
)

// Font sizes (pt).
const (
	fontTitle       = 54
	fontSubtitle    = 24
	fontFooter      = 12
	fontContentBar  = 40
	fontBody        = 16
	fontTwoColBar   = 32
	fontColumnBody  = 14
)
