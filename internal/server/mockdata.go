package server

import (
	"time"

	"NewsletterHub/internal/domain"
)

// Static demo datasets served next to the collected articles, mirroring what
// the site shows before any collection run has happened.

// categoryInfo extends the closed category set with presentation fields.
type categoryInfo struct {
	domain.Category
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
}

var categoryDetails = map[string]categoryInfo{
	"tech": {
		Description: "Latest technology trends, developer tooling, and programming news",
		Icon:        "CpuChipIcon",
		IsActive:    true,
	},
	"ai": {
		Description: "Artificial intelligence, machine learning, and research highlights",
		Icon:        "LightBulbIcon",
		IsActive:    true,
	},
	"marketing": {
		Description: "Digital marketing, branding, and growth strategy insights",
		Icon:        "MegaphoneIcon",
		IsActive:    true,
	},
	"design": {
		Description: "UX/UI design, visual design, and design system trends",
		Icon:        "PaintBrushIcon",
		IsActive:    true,
	},
}

func mockArticles() []domain.Article {
	published := time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC)
	return []domain.Article{
		{
			ID:          1,
			Title:       "What the GPT-4 Turbo update means in practice",
			Slug:        "openai-gpt4-turbo-update",
			Excerpt:     "A detailed look at the latest GPT-4 Turbo features and performance improvements.",
			Content:     "A walkthrough of the newest GPT-4 Turbo capabilities...",
			Category:    domain.Category{ID: 2, Name: "AI", Slug: "ai", Color: "#8B5CF6"},
			Featured:    true,
			Published:   true,
			PublishedAt: published,
			ReadTime:    5,
			ViewCount:   1240,
		},
		{
			ID:          2,
			Title:       "UX/UI design trends to watch in 2024",
			Slug:        "ux-ui-design-trends-2024",
			Excerpt:     "The design trends worth paying attention to this year, and how to apply them.",
			Content:     "An analysis of this year's design trends...",
			Category:    domain.Category{ID: 4, Name: "Design", Slug: "design", Color: "#F59E0B"},
			Featured:    true,
			Published:   true,
			PublishedAt: published,
			ReadTime:    7,
			ViewCount:   890,
		},
		{
			ID:          3,
			Title:       "Ten ways companies use AI in marketing today",
			Slug:        "ai-marketing-use-cases",
			Excerpt:     "Real-world cases of AI in marketing and how to put them to work.",
			Content:     "Case studies of AI-driven marketing...",
			Category:    domain.Category{ID: 3, Name: "Marketing", Slug: "marketing", Color: "#10B981"},
			Featured:    true,
			Published:   true,
			PublishedAt: published,
			ReadTime:    6,
			ViewCount:   650,
		},
	}
}

// podcast is a static audio-briefing record.
type podcast struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AudioURL    string          `json:"audioUrl"`
	Duration    string          `json:"duration"`
	PublishedAt time.Time       `json:"publishedAt"`
	Category    domain.Category `json:"category"`
	Listens     int             `json:"listens"`
}

func mockPodcasts() []podcast {
	published := time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC)
	return []podcast{
		{
			ID:          1,
			Title:       "AI weekly briefing",
			Description: "From the latest OpenAI updates to Google's newest models, this week's AI news in one episode.",
			AudioURL:    "/audio/ai-weekly-20240815.mp3",
			Duration:    "15:32",
			PublishedAt: published,
			Category:    domain.Category{ID: 2, Name: "AI", Slug: "ai", Color: "#8B5CF6"},
			Listens:     1240,
		},
		{
			ID:          2,
			Title:       "IT/TECH weekly briefing",
			Description: "New development frameworks and cloud service updates.",
			AudioURL:    "/audio/tech-weekly-20240815.mp3",
			Duration:    "12:45",
			PublishedAt: published,
			Category:    domain.Category{ID: 1, Name: "IT/TECH", Slug: "tech", Color: "#3B82F6"},
			Listens:     890,
		},
	}
}
