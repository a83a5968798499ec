package models

import (
	"testing"
)

func TestPalette(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected Color
	}{
		{"Onyx", Onyx, "FF0D0A0B"},
		{"CharcoalBlue", CharcoalBlue, "FF454955"},
		{"LavenderMist", LavenderMist, "FFF3EFF5"},
		{"LimeMoss", LimeMoss, "FF72B01D"},
		{"Green", Green, "FF3F7D20"},
		{"White", White, "FFFFFFFF"},
	}

	for _, tt := range tests {
		if tt.color != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.name, tt.color, tt.expected)
		}
	}
}

func TestAddTitleSlide(t *testing.T) {
	deck := NewDeck("doc title", "creator")
	deck.AddTitleSlide("Umuganda", "Social Impact Tracking Platform for Rwanda")

	if len(deck.Slides) != 1 {
		t.Fatalf("len(deck.Slides) = %d, expected 1", len(deck.Slides))
	}

	s := deck.Slides[0]
	if s.Kind != KindTitle {
		t.Errorf("Kind = %q, expected %q", s.Kind, KindTitle)
	}
	if s.Background != Onyx {
		t.Errorf("Background = %q, expected %q", s.Background, Onyx)
	}
	if s.Title != "Umuganda" {
		t.Errorf("Title = %q, expected %q", s.Title, "Umuganda")
	}
	if s.Subtitle != "Social Impact Tracking Platform for Rwanda" {
		t.Errorf("Subtitle = %q", s.Subtitle)
	}
	if s.Footer != "December 2025" {
		t.Errorf("Footer = %q, expected %q", s.Footer, "December 2025")
	}
}

func TestAddContentSlide(t *testing.T) {
	lines := []string{"• first", "• second", "", "• third"}

	// includeImage must not change the produced slide.
	for _, includeImage := range []bool{false, true} {
		deck := NewDeck("", "")
		deck.AddContentSlide("Problem Statement", lines, includeImage)

		if len(deck.Slides) != 1 {
			t.Fatalf("len(deck.Slides) = %d, expected 1", len(deck.Slides))
		}

		s := deck.Slides[0]
		if s.Kind != KindContent {
			t.Errorf("Kind = %q, expected %q", s.Kind, KindContent)
		}
		if s.Background != LavenderMist {
			t.Errorf("Background = %q, expected %q", s.Background, LavenderMist)
		}
		if len(s.Body) != len(lines) {
			t.Fatalf("len(Body) = %d, expected %d", len(s.Body), len(lines))
		}
		for i := range lines {
			if s.Body[i] != lines[i] {
				t.Errorf("Body[%d] = %q, expected %q", i, s.Body[i], lines[i])
			}
		}
	}
}

func TestAddTwoColumnSlide(t *testing.T) {
	left := []string{"Left:", "• a", "• b"}
	right := []string{"Right:", "• c"}

	deck := NewDeck("", "")
	deck.AddTwoColumnSlide("Core Features", left, right)

	if len(deck.Slides) != 1 {
		t.Fatalf("len(deck.Slides) = %d, expected 1", len(deck.Slides))
	}

	s := deck.Slides[0]
	if s.Kind != KindTwoColumn {
		t.Errorf("Kind = %q, expected %q", s.Kind, KindTwoColumn)
	}
	if s.Background != LavenderMist {
		t.Errorf("Background = %q, expected %q", s.Background, LavenderMist)
	}

	if len(s.Left) != len(left) {
		t.Fatalf("len(Left) = %d, expected %d", len(s.Left), len(left))
	}
	for i := range left {
		if s.Left[i] != left[i] {
			t.Errorf("Left[%d] = %q, expected %q", i, s.Left[i], left[i])
		}
	}

	if len(s.Right) != len(right) {
		t.Fatalf("len(Right) = %d, expected %d", len(s.Right), len(right))
	}
	for i := range right {
		if s.Right[i] != right[i] {
			t.Errorf("Right[%d] = %q, expected %q", i, s.Right[i], right[i])
		}
	}
}

func TestSlideOrderMatchesCallOrder(t *testing.T) {
	deck := NewDeck("", "")
	deck.AddTitleSlide("t", "s")
	deck.AddContentSlide("c1", []string{"x"}, false)
	deck.AddTwoColumnSlide("tc", []string{"l"}, []string{"r"})
	deck.AddContentSlide("c2", []string{"y"}, true)

	expected := []Kind{KindTitle, KindContent, KindTwoColumn, KindContent}
	if len(deck.Slides) != len(expected) {
		t.Fatalf("len(deck.Slides) = %d, expected %d", len(deck.Slides), len(expected))
	}
	for i, kind := range expected {
		if deck.Slides[i].Kind != kind {
			t.Errorf("Slides[%d].Kind = %q, expected %q", i, deck.Slides[i].Kind, kind)
		}
	}
}
