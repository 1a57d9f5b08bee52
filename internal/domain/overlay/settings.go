// Package overlay contains the per-court operator state: persistent display
// settings and one-shot animation events, plus the store contracts they
// live behind.
package overlay

import (
	"strings"
)

// ViewMode selects what the overlay client renders.
type ViewMode string

// Supported view modes.
const (
	ViewModeAuto       ViewMode = "auto"
	ViewModeScoreboard ViewMode = "scoreboard"
	ViewModeSlate      ViewMode = "slate"
	ViewModeHidden     ViewMode = "hidden"
)

// Documented value ranges for numeric settings.
const (
	LogoOpacityMin = 0.0
	LogoOpacityMax = 1.0
	LogoScaleMin   = 0.4
	LogoScaleMax   = 2.0
)

// Settings are the persistent per-court display preferences.
// Optional fields are nil when the operator has not set them.
type Settings struct {
	Swap           bool     `json:"swap"`
	Name1          *string  `json:"name1"`
	Name2          *string  `json:"name2"`
	LeftColor      *string  `json:"leftColor"`
	RightColor     *string  `json:"rightColor"`
	LogoOpacity    *float64 `json:"logoOpacity"`
	LogoScale      *float64 `json:"logoScale"`
	ViewMode       ViewMode `json:"viewMode"`
	TournamentName *string  `json:"tournamentName"`
	Subtitle       *string  `json:"subtitle"`
}

// DefaultSettings returns the documented defaults for a court with no
// stored settings.
func DefaultSettings() Settings {
	return Settings{ViewMode: ViewModeAuto}
}

// ParseSettings extracts the allow-listed fields from an arbitrary request
// body. Unknown fields are dropped, malformed fields resolve to their
// defaults, out-of-range numerics are clamped. A field omitted from the body
// resolves to its default, never to a previously stored value.
func ParseSettings(body map[string]any) Settings {
	s := DefaultSettings()
	if body == nil {
		return s
	}

	if b, ok := body["swap"].(bool); ok {
		s.Swap = b
	}

	s.Name1 = optionalText(body["name1"])
	s.Name2 = optionalText(body["name2"])
	s.LeftColor = optionalText(body["leftColor"])
	s.RightColor = optionalText(body["rightColor"])
	s.TournamentName = optionalText(body["tournamentName"])
	s.Subtitle = optionalText(body["subtitle"])

	s.LogoOpacity = optionalNumber(body["logoOpacity"], LogoOpacityMin, LogoOpacityMax)
	s.LogoScale = optionalNumber(body["logoScale"], LogoScaleMin, LogoScaleMax)

	switch ViewMode(textOf(body["viewMode"])) {
	case ViewModeAuto, ViewModeScoreboard, ViewModeSlate, ViewModeHidden:
		s.ViewMode = ViewMode(textOf(body["viewMode"]))
	default:
		s.ViewMode = ViewModeAuto
	}

	return s
}

func textOf(v any) string {
	s, _ := v.(string)
	return s
}

func optionalText(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalNumber(v any, lo, hi float64) *float64 {
	n, ok := v.(float64)
	if !ok {
		return nil
	}
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return &n
}
