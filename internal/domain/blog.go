package domain

import (
	"time"

	"github.com/araddon/dateparse"
)

// BlogPost is a read-only content entry loaded from the static blogs
// document. IDs come from the data, nothing in the application mutates blog
// records.
type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	Date     string `json:"date"` // loosely formatted, see PublishedAt
	ReadTime string `json:"readTime,omitempty"`
	Category string `json:"category,omitempty"`
}

// PublishedAt parses the loosely formatted date field.
func (b BlogPost) PublishedAt() (time.Time, error) {
	return dateparse.ParseAny(b.Date)
}
