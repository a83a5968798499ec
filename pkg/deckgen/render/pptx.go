package render

import (
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/umuganda-platform/deckgen-go/pkg/deckgen/models"
)

// helper: create a solid fill
func solidFill(c models.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(string(c)))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// Render builds a GoPPT presentation from the deck model. Slides are
// emitted in model order; the first deck slide reuses the presentation's
// initial slide.
func Render(deck *models.Deck) *ppt.Presentation {
	p := ppt.New()
	p.GetDocumentProperties().Title = deck.Title
	p.GetDocumentProperties().Creator = deck.Creator

	for i, s := range deck.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}

		paintBackground(slide, s.Background)

		switch s.Kind {
		case models.KindTitle:
			renderTitleSlide(slide, s)
		case models.KindContent:
			renderContentSlide(slide, s)
		case models.KindTwoColumn:
			renderTwoColumnSlide(slide, s)
		}
	}

	return p
}

// WriteTo renders the deck and writes the .pptx archive to w.
func WriteTo(deck *models.Deck, w io.Writer) error {
	p := Render(deck)

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("failed to create PPTX writer: %w", err)
	}
	if err := pw.(*ppt.PPTXWriter).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write PPTX: %w", err)
	}
	return nil
}

// paintBackground paints the slide background as a full-bleed filled
// rectangle. GoPPT exposes no slide background fill, so the rectangle
// covers the whole 10 x 7.5 inch page and is drawn before any content.
func paintBackground(slide *ppt.Slide, c models.Color) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(slideWidth).SetHeight(slideHeight)
	bg.SetFill(solidFill(c))
}

func renderTitleSlide(slide *ppt.Slide, s models.Slide) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(titleBoxX).SetOffsetY(titleBoxY)
	titleShape.SetWidth(titleBoxW).SetHeight(titleBoxH)
	tr := titleShape.CreateTextRun(s.Title)
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(string(models.LimeMoss)))
	alignCenter(titleShape.GetActiveParagraph())

	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(titleBoxX).SetOffsetY(subtitleBoxY)
	subShape.SetWidth(titleBoxW).SetHeight(subtitleBoxH)
	str := subShape.CreateTextRun(s.Subtitle)
	str.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(string(models.LavenderMist)))
	alignCenter(subShape.GetActiveParagraph())

	footShape := slide.CreateRichTextShape()
	footShape.SetOffsetX(titleBoxX).SetOffsetY(footerBoxY)
	footShape.SetWidth(titleBoxW).SetHeight(footerBoxH)
	ftr := footShape.CreateTextRun(s.Footer)
	ftr.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(string(models.CharcoalBlue)))
	alignCenter(footShape.GetActiveParagraph())
}

func renderContentSlide(slide *ppt.Slide, s models.Slide) {
	addTitleBar(slide, s.Title, contentBarH, fontContentBar)

	body := slide.CreateRichTextShape()
	body.SetOffsetX(contentBodyX).SetOffsetY(contentBodyY)
	body.SetWidth(contentBodyW).SetHeight(contentBodyH)
	fillParagraphs(body, s.Body, fontBody)
}

func renderTwoColumnSlide(slide *ppt.Slide, s models.Slide) {
	addTitleBar(slide, s.Title, twoColBarH, fontTwoColBar)

	left := slide.CreateRichTextShape()
	left.SetOffsetX(leftColX).SetOffsetY(twoColY)
	left.SetWidth(leftColW).SetHeight(twoColH)
	fillParagraphs(left, s.Left, fontColumnBody)

	right := slide.CreateRichTextShape()
	right.SetOffsetX(rightColX).SetOffsetY(twoColY)
	right.SetWidth(rightColW).SetHeight(twoColH)
	fillParagraphs(right, s.Right, fontColumnBody)
}

// addTitleBar adds the accent-colored bar spanning the slide width with
// bold white title text.
func addTitleBar(slide *ppt.Slide, title string, height int64, fontSize int) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(0)
	bar.SetWidth(slideWidth).SetHeight(height)
	bar.SetFill(solidFill(models.LimeMoss))

	tr := bar.CreateTextRun(title)
	tr.GetFont().SetSize(fontSize).SetBold(true).SetColor(ppt.NewColor(string(models.White)))
}

// fillParagraphs writes one paragraph per line, in input order, preserving
// line text exactly.
func fillParagraphs(shape *ppt.RichTextShape, lines []string, fontSize int) {
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(fontSize).SetColor(ppt.NewColor(string(models.Onyx)))
	}
}
