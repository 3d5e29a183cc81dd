package model

type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Rank   int    `json:"rank"`
	Count  int    `json:"count"` // Nombre de logs soumis sur le challenge
}
