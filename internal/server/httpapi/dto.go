package httpapi

import "github.com/basharkhan/brainly/internal/server/models"

// Wire shapes. Field names follow the frontend contract: content bodies ride
// in "content", item IDs in "contentId".

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type contentRequest struct {
	ContentID string   `json:"contentId,omitempty"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	Tags      []string `json:"tags"`
	Body      string   `json:"content"`
}

type contentResponse struct {
	ID    string   `json:"id"`
	Type  string   `json:"type"`
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Tags  []string `json:"tags"`
	Body  string   `json:"content,omitempty"`
}

type deleteContentRequest struct {
	ContentID string `json:"contentId"`
}

type shareRequest struct {
	Share bool `json:"share"`
}

func toContentModel(in *contentRequest) *models.Content {
	return &models.Content{
		Type:  in.Type,
		Title: in.Title,
		Link:  in.Link,
		Tags:  in.Tags,
		Body:  in.Body,
	}
}

// toContentResponses never exposes the owner's identity; shared collections
// reuse the same shape.
func toContentResponses(items []*models.Content) []contentResponse {
	result := make([]contentResponse, 0, len(items))
	for _, item := range items {
		tags := item.Tags
		if tags == nil {
			tags = []string{}
		}
		result = append(result, contentResponse{
			ID:    item.ID,
			Type:  item.Type,
			Title: item.Title,
			Link:  item.Link,
			Tags:  tags,
			Body:  item.Body,
		})
	}
	return result
}
