// Package mailbox provides email sources for the collector. The mock inbox
// replays a canned newsletter corpus so the pipeline runs end to end without
// provider credentials.
package mailbox

import (
	"context"
	"log/slog"
	"time"

	"NewsletterHub/internal/domain"
	"NewsletterHub/internal/ports"
)

// MockInbox serves a fixed set of newsletter emails, newest first.
type MockInbox struct {
	logger *slog.Logger
}

var _ ports.EmailSource = (*MockInbox)(nil)

// NewMockInbox builds the canned source.
func NewMockInbox(logger *slog.Logger) *MockInbox {
	return &MockInbox{logger: logger}
}

// Initialize never reports a live provider.
func (m *MockInbox) Initialize(_ context.Context) (bool, error) {
	return false, nil
}

// Search returns up to maxResults canned emails.
func (m *MockInbox) Search(_ context.Context, maxResults int) ([]domain.RawEmail, error) {
	emails := mockEmails()
	if maxResults > 0 && maxResults < len(emails) {
		emails = emails[:maxResults]
	}
	if m.logger != nil {
		m.logger.Info("returning mock newsletter emails", "count", len(emails))
	}
	return emails, nil
}

func mockEmails() []domain.RawEmail {
	return []domain.RawEmail{
		{
			ID:      "mock_1",
			Subject: "TLDR: AI breakthrough in language models, new React features, and cybersecurity updates",
			Date:    time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC),
			From:    "dan@tldrnewsletter.com",
			Snippet: "AI breakthrough in language models, new React features, and cybersecurity updates",
			Body: `<html><body>
<h2>🤖 AI &amp; Tech News</h2>
<p><strong>OpenAI releases GPT-4 Turbo with vision capabilities</strong></p>
<p>OpenAI has announced a major update to GPT-4 Turbo, now featuring enhanced vision capabilities and faster processing speeds. The new model can analyze images, charts, and diagrams with unprecedented accuracy.</p>
<p><strong>Meta's new AR glasses prototype shows promise</strong></p>
<p>Meta unveiled their latest AR glasses prototype at their developer conference, featuring lightweight design and impressive display quality.</p>
<h2>💻 Development Updates</h2>
<p><strong>React 19 introduces new server components</strong></p>
<p>The React team has released React 19 with revolutionary server components that enable better performance and SEO optimization.</p>
<p><strong>TypeScript 5.3 brings new features</strong></p>
<p>TypeScript 5.3 includes improved type inference and better support for modern JavaScript features.</p>
<h2>🎨 Design Trends</h2>
<p><strong>Minimalist UI design gains popularity</strong></p>
<p>Designers are embracing ultra-minimalist interfaces with focus on white space and subtle animations.</p>
<h2>📈 Marketing Insights</h2>
<p><strong>AI-powered marketing automation sees 300% growth</strong></p>
<p>Companies using AI for marketing automation report significant improvements in conversion rates and customer engagement.</p>
</body></html>`,
		},
		{
			ID:      "mock_2",
			Subject: "TLDR: Quantum computing milestone, Next.js 14 release, and UX design innovations",
			Date:    time.Date(2024, time.August, 14, 10, 0, 0, 0, time.UTC),
			From:    "dan@tldrnewsletter.com",
			Snippet: "Quantum computing milestone, Next.js 14 release, and UX design innovations",
			Body: `<html><body>
<h2>🔬 Tech Breakthroughs</h2>
<p><strong>Google achieves quantum supremacy milestone</strong></p>
<p>Google's quantum computer successfully performed a calculation that would take classical computers thousands of years to complete.</p>
<h2>⚛️ Frontend Development</h2>
<p><strong>Next.js 14 introduces app router improvements</strong></p>
<p>Vercel released Next.js 14 with significant improvements to the app router, better caching, and enhanced developer experience.</p>
<p><strong>Svelte 5 runes system revolutionizes reactivity</strong></p>
<p>Svelte 5 introduces a new runes system that makes reactivity more explicit and powerful.</p>
<h2>🎨 Design Innovation</h2>
<p><strong>Neomorphism design trend gains traction</strong></p>
<p>The neomorphism design trend is becoming popular among mobile app designers for its soft, tactile appearance.</p>
<p><strong>Voice UI design principles emerge</strong></p>
<p>As voice interfaces become more common, new design principles are emerging for creating intuitive voice experiences.</p>
<h2>📊 Marketing Technology</h2>
<p><strong>Personalization engines drive 250% increase in engagement</strong></p>
<p>Advanced personalization engines are helping companies achieve remarkable improvements in user engagement and retention.</p>
</body></html>`,
		},
		{
			ID:      "mock_3",
			Subject: "TLDR: AI ethics guidelines, Vue 3.4 features, and sustainable design practices",
			Date:    time.Date(2024, time.August, 13, 10, 0, 0, 0, time.UTC),
			From:    "dan@tldrnewsletter.com",
			Snippet: "AI ethics guidelines, Vue 3.4 features, and sustainable design practices",
			Body: `<html><body>
<h2>🤖 AI Development</h2>
<p><strong>New AI ethics guidelines released by IEEE</strong></p>
<p>The IEEE has published comprehensive guidelines for ethical AI development, focusing on transparency, fairness, and accountability.</p>
<p><strong>Claude 3 shows impressive reasoning capabilities</strong></p>
<p>Anthropic's Claude 3 demonstrates advanced reasoning and coding abilities, competing closely with GPT-4.</p>
<h2>🖥️ Web Development</h2>
<p><strong>Vue 3.4 improves performance and DX</strong></p>
<p>Vue 3.4 brings significant performance improvements and enhanced developer experience with better TypeScript support.</p>
<p><strong>Web Components gain mainstream adoption</strong></p>
<p>Major frameworks are embracing Web Components, making cross-framework component sharing easier than ever.</p>
<h2>🌱 Sustainable Design</h2>
<p><strong>Green web design reduces carbon footprint</strong></p>
<p>Designers are adopting sustainable practices to reduce the environmental impact of digital products.</p>
<h2>🎯 Growth Marketing</h2>
<p><strong>Product-led growth strategies show 40% higher retention</strong></p>
<p>Companies focusing on product-led growth are seeing significantly higher user retention and organic growth rates.</p>
</body></html>`,
		},
	}
}
