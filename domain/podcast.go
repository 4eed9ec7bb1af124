package domain

import "time"

// Podcast is a finished generation handed to the archive.
type Podcast struct {
	ID        string
	SessionID string
	Topic     string
	Style     PromptStyle
	Model     Model
	Script    string
	Audio     *AudioResult
	CreatedAt time.Time
}

type ArchivedPodcast struct {
	Podcast
	AudioKey string
	AudioURL string
}
