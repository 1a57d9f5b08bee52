package model

import (
	"github.com/okian/courtside/internal/domain/overlay"
)

// Overlay carries the operator state alongside the match.
type Overlay struct {
	Settings overlay.Settings `json:"settings"`
	Event    *overlay.Event   `json:"event"`
}

// Payload is the composed response served to polling overlay clients.
type Payload struct {
	CourtID   string      `json:"courtId"`
	CourtName string      `json:"courtName,omitempty"`
	UpdatedAt string      `json:"updatedAt"`
	Match     *MatchState `json:"match"`
	Overlay   Overlay     `json:"overlay"`
}
