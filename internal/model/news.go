package model

import "fmt"

// NewsItem is one reported scam-warning story. The external model is
// constrained to a fixed five-field JSON object per item.
type NewsItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	PublishedDate string `json:"publishedDate"`
	Summary       string `json:"summary"`
}

// Validate checks the minimum shape required to display an item
func (n NewsItem) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("news item missing title")
	}
	if n.URL == "" {
		return fmt.Errorf("news item missing url")
	}
	return nil
}
