// Package classify assigns one of the fixed topical categories to a blob of
// text by scoring it against per-category keyword lists.
package classify

import (
	"regexp"
	"strings"

	"NewsletterHub/internal/domain"
)

// slugOrder fixes the enumeration used for scoring and tie-breaking. The
// first entry doubles as the default when nothing matches.
var slugOrder = []string{"tech", "ai", "marketing", "design"}

var categories = map[string]domain.Category{
	"tech":      {ID: 1, Name: "IT/TECH", Slug: "tech", Color: "#3B82F6"},
	"ai":        {ID: 2, Name: "AI", Slug: "ai", Color: "#8B5CF6"},
	"marketing": {ID: 3, Name: "Marketing", Slug: "marketing", Color: "#10B981"},
	"design":    {ID: 4, Name: "Design", Slug: "design", Color: "#F59E0B"},
}

var keywords = map[string][]string{
	"tech": {
		"javascript", "typescript", "react", "vue", "angular", "node.js", "python", "java",
		"programming", "development", "coding", "software", "framework", "library",
		"api", "database", "cloud", "aws", "docker", "kubernetes", "microservices",
		"frontend", "backend", "fullstack", "web development", "mobile development",
		"devops", "ci/cd", "git", "github", "open source", "cybersecurity",
	},
	"ai": {
		"artificial intelligence", "machine learning", "deep learning", "neural network",
		"gpt", "openai", "claude", "chatgpt", "llm", "language model", "ai", "ml",
		"computer vision", "nlp", "natural language processing", "tensorflow", "pytorch",
		"generative ai", "automation", "robotics", "algorithm", "data science",
		"predictive analytics", "ai ethics", "anthropic", "google ai", "microsoft ai",
	},
	"marketing": {
		"marketing", "digital marketing", "seo", "sem", "social media", "content marketing",
		"email marketing", "growth hacking", "conversion", "analytics", "roi", "kpi",
		"brand", "advertising", "campaign", "customer acquisition", "retention",
		"personalization", "segmentation", "a/b testing", "funnel", "lead generation",
		"crm", "marketing automation", "influencer marketing", "affiliate marketing",
	},
	"design": {
		"design", "ui", "ux", "user interface", "user experience", "figma", "sketch",
		"adobe", "photoshop", "illustrator", "typography", "color theory", "layout",
		"wireframe", "prototype", "design system", "component library", "accessibility",
		"responsive design", "mobile design", "web design", "graphic design",
		"branding", "logo", "visual design", "interaction design", "design thinking",
	},
}

// patterns holds one whole-phrase matcher per keyword, compiled once.
var patterns = func() map[string][]*regexp.Regexp {
	compiled := make(map[string][]*regexp.Regexp, len(keywords))
	for slug, list := range keywords {
		for _, kw := range list {
			expr := `\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`
			compiled[slug] = append(compiled[slug], regexp.MustCompile(expr))
		}
	}
	return compiled
}()

// Classify scores text against every category's keyword list and returns the
// category with the strictly highest aggregate count of whole-word matches.
// Ties keep the earlier category in enumeration order; a zero score across
// the board falls back to tech.
func Classify(text string) domain.Category {
	lower := strings.ToLower(text)

	best := slugOrder[0]
	maxScore := 0
	for _, slug := range slugOrder {
		score := 0
		for _, re := range patterns[slug] {
			score += len(re.FindAllStringIndex(lower, -1))
		}
		if score > maxScore {
			maxScore = score
			best = slug
		}
	}

	return categories[best]
}

// Lookup resolves a category by slug.
func Lookup(slug string) (domain.Category, bool) {
	cat, ok := categories[strings.ToLower(slug)]
	return cat, ok
}

// Categories returns the closed category set in enumeration order.
func Categories() []domain.Category {
	out := make([]domain.Category, 0, len(slugOrder))
	for _, slug := range slugOrder {
		out = append(out, categories[slug])
	}
	return out
}
