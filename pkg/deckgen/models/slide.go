// Package models defines the deck data model for presentation generation.
package models

// Kind identifies the layout of a slide.
type Kind string

const (
	// KindTitle is the opening slide: dark background, centered title,
	// subtitle, and a dated footer.
	KindTitle Kind = "title"
	// KindContent is a bullet slide: title bar plus one body textbox with
	// one paragraph per content line.
	KindContent Kind = "content"
	// KindTwoColumn is a split slide: title bar plus two side-by-side
	// textboxes populated independently.
	KindTwoColumn Kind = "two_column"
)

// Slide represents one slide of the deck. Only the fields relevant to its
// Kind are populated.
type Slide struct {
	// Kind is the slide layout.
	Kind Kind `json:"kind"`
	// Background is the solid background fill color.
	Background Color `json:"background"`
	// Title is the slide title text.
	Title string `json:"title"`
	// Subtitle is the centered subtitle (title slides only).
	Subtitle string `json:"subtitle,omitempty"`
	// Footer is the small footer line (title slides only).
	Footer string `json:"footer,omitempty"`
	// Body contains one entry per body paragraph, in display order
	// (content slides only).
	Body []string `json:"body,omitempty"`
	// Left contains the left column paragraphs, in display order
	// (two-column slides only).
	Left []string `json:"left,omitempty"`
	// Right contains the right column paragraphs, in display order
	// (two-column slides only).
	Right []string `json:"right,omitempty"`
}
