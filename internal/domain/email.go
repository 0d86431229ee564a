package domain

import "time"

// RawEmail is one newsletter email as delivered by an EmailSource.
// It is immutable input to the collection pipeline.
type RawEmail struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	From    string    `json:"from"`
	Body    string    `json:"body"`
	Snippet string    `json:"snippet"`
}

// ExtractionMethod records which cascade tier produced a section.
type ExtractionMethod string

const (
	MethodHeaderBased    ExtractionMethod = "header-based"
	MethodParagraphBased ExtractionMethod = "paragraph-based"
	MethodLineBased      ExtractionMethod = "line-based"
)

// Section is a candidate title+body pair cut out of one email's markup.
// Sections are transient; they live only between extraction and article build.
type Section struct {
	Title   string
	Content string
	Method  ExtractionMethod
}
