// Package queue defines message payloads exchanged over the message broker.
package queue

// ImageClassifiedEvent is published after an upload has been classified
// and its recipe resolved. It contains enough information for downstream
// consumers to log, notify, or feed analytics without querying the
// primary database.
type ImageClassifiedEvent struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Filename     string `json:"filename"`
	Label        string `json:"label"`
	RecipeFound  bool   `json:"recipe_found"`
	ClassifiedAt string `json:"classified_at"`
}
