package model

import (
	"time"
)

type Challenge struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Duration     int       `json:"duration"` // en jours
	PrizePool    float64   `json:"prizePool"`
	Creator      string    `json:"creator"`
	Participants []string  `json:"participants"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// HasParticipant indique si le wallet fait partie du challenge
func (c *Challenge) HasParticipant(wallet string) bool {
	for _, p := range c.Participants {
		if p == wallet {
			return true
		}
	}
	return false
}

type CreateChallengeRequest struct {
	Name      string  `json:"name"`
	Duration  int     `json:"duration"`
	PrizePool float64 `json:"prizePool"`
}
