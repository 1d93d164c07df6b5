package models

import "time"

// Content kinds accepted by the API.
const (
	ContentTypeDocument = "document"
	ContentTypeTweet    = "tweet"
	ContentTypeYoutube  = "youtube"
	ContentTypeLink     = "link"
)

// ValidContentType reports whether t is one of the enumerated content kinds.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeDocument, ContentTypeTweet, ContentTypeYoutube, ContentTypeLink:
		return true
	}
	return false
}

// Content is a single saved piece of knowledge. Link is empty for pure-text
// documents; Body carries the optional text. Every item has exactly one owner.
type Content struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Link      string
	Tags      []string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
