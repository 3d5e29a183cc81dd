package model

import (
	"time"
)

// ImageRef référence une image stockée en mémoire (voir internal/media).
// Le store de logs ne regarde jamais le contenu, seulement la référence.
type ImageRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type LogEntry struct {
	ID          string    `json:"id"`
	ChallengeID string    `json:"challengeId"`
	User        string    `json:"user"`
	Timestamp   time.Time `json:"timestamp"`
	Image       ImageRef  `json:"image"`
	Caption     string    `json:"caption"`
}
