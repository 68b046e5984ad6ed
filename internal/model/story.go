package model

// Story is a Hacker News front-page entry shown in the side panel.
type Story struct {
	ObjectID string `json:"objectID"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}
