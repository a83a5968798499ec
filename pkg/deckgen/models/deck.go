package models

// titleFooter is the literal footer line on the title slide.
const titleFooter = "December 2025"

// Deck represents the complete ordered slide deck.
type Deck struct {
	// Title is the document title property.
	Title string `json:"title"`
	// Creator is the document creator property.
	Creator string `json:"creator"`
	// Slides is the ordered slide sequence.
	Slides []Slide `json:"slides"`
}

// NewDeck creates an empty deck with the given document properties.
func NewDeck(title, creator string) *Deck {
	return &Deck{
		Title:   title,
		Creator: creator,
	}
}

// AddTitleSlide appends a title slide with a dark background, a centered
// title and subtitle, and a dated footer.
func (d *Deck) AddTitleSlide(title, subtitle string) {
	d.Slides = append(d.Slides, Slide{
		Kind:       KindTitle,
		Background: Onyx,
		Title:      title,
		Subtitle:   subtitle,
		Footer:     titleFooter,
	})
}

// AddContentSlide appends a content slide with a title bar and one body
// paragraph per line, in input order. The includeImage flag is accepted but
// has no effect.
func (d *Deck) AddContentSlide(title string, lines []string, includeImage bool) {
	d.Slides = append(d.Slides, Slide{
		Kind:       KindContent,
		Background: LavenderMist,
		Title:      title,
		Body:       lines,
	})
}

// AddTwoColumnSlide appends a two-column slide with a title bar and two
// side-by-side textboxes, each populated paragraph-by-paragraph from its
// respective line sequence.
func (d *Deck) AddTwoColumnSlide(title string, left, right []string) {
	d.Slides = append(d.Slides, Slide{
		Kind:       KindTwoColumn,
		Background: LavenderMist,
		Title:      title,
		Left:       left,
		Right:      right,
	})
}
