// Package deckgen builds the Umuganda platform presentation deck.
package deckgen

import (
	"bytes"
	"os"

	"github.com/umuganda-platform/deckgen-go/pkg/deckgen/models"
	"github.com/umuganda-platform/deckgen-go/pkg/deckgen/render"
)

// Build assembles the six-slide Umuganda platform deck: title, problem
// statement, solution overview, core features (two-column), use case
// diagram, and post creation workflow.
func Build() *models.Deck {
	deck := models.NewDeck("Umuganda Platform Presentation", "Umuganda")

	deck.AddTitleSlide(
		"Umuganda",
		"Social Impact Tracking Platform for Rwanda",
	)

	deck.AddContentSlide(
		"Problem Statement",
		[]string{
			"• Manual tracking: Community service activities recorded manually without centralization",
			"• Lack of transparency: No visibility into impact metrics or community contributions",
			"• Low engagement: Communities lack incentive to report and celebrate contributions",
			"• No analytics: Absence of data-driven insights for decision-making at district level",
			"• Siloed information: Each cell operates independently without sharing knowledge",
			"• Accountability gaps: Difficult to verify and measure social impact",
		},
		false,
	)

	deck.AddContentSlide(
		"Solution Overview",
		[]string{
			"📱 Unified Platform: Web-based application for social media-style activity sharing",
			"🎯 Impact Measurement: Real-time analytics dashboard tracking community contributions",
			"👥 Hierarchical Access: Cell members, moderators, and district viewers with role-based permissions",
			"📊 Rich Engagement: Comments, reactions, reposts to foster community participation",
			"🏆 Recognition System: Trending activities, popular posts, engagement leaderboards",
			"🔍 Data Insights: Comprehensive analytics showing impact by location, category, and time",
		},
		false,
	)

	deck.AddTwoColumnSlide(
		"Core Features",
		[]string{
			"User Management:",
			"• Registration & authentication",
			"• Role-based access control",
			"• Profile management",
			"",
			"Activity Sharing:",
			"• Text posts with hashtags",
			"• Image uploads (up to 5)",
			"• Location tagging",
			"• Category classification",
		},
		[]string{
			"Engagement Tools:",
			"• Comments on posts",
			"• 4 reaction types",
			"• Repost/share capability",
			"• Trending detection",
			"",
			"Analytics & Insights:",
			"• National statistics",
			"• Category breakdown",
			"• Popular hashtags",
			"• Community leaderboards",
		},
	)

	deck.AddContentSlide(
		"Use Case Diagram",
		[]string{
			"👤 Actors:",
			"   • Community Member: Create posts, comment, react, repost",
			"   • Cell Moderator: Manage posts, moderate comments, oversee cell activities",
			"   • District Viewer: View analytics, generate reports, access all district data",
			"",
			"🎯 Primary Use Cases:",
			"   1. Register & Login → Access control",
			"   2. Create Post → Share activity (text/images)",
			"   3. Engage Post → Comment, react, repost",
			"   4. View Feed → Discover activities with filters",
			"   5. View Analytics → Track impact metrics",
		},
		false,
	)

	deck.AddContentSlide(
		"Post Creation Workflow",
		[]string{
			"📝 High-Level Sequence:",
			"",
			"1. User fills compose form (text/images, location, category, hashtags)",
			"2. Frontend validates input (length, image count, etc.)",
			"3. API receives request + validates with Zod schemas",
			"4. Factory pattern creates appropriate post type (Text/Image)",
			"5. Builder pattern constructs post with all metadata",
			"6. Prisma ORM saves to PostgreSQL database",
			"7. Analytics engine updates metrics",
			"8. Response sent with post object",
			"9. Frontend updates UI and shows confirmation",
			"",
			"⚡ Performance: <200ms database operation + validation",
		},
		false,
	)

	return deck
}

// Write renders the deck to PowerPoint format and writes it to
// opts.OutputPath, overwriting any existing file.
func Write(deck *models.Deck, opts Options) error {
	var buf bytes.Buffer
	if err := render.WriteTo(deck, &buf); err != nil {
		return NewRenderError("render", err)
	}

	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), 0644); err != nil {
		return NewRenderError("write", err)
	}

	return nil
}
