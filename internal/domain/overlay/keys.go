package overlay

import "fmt"

// Key scheme is an external interface: operators and renderers address the
// same court through overlay:<provider>:court:<id>:settings|event.

// SettingsKey returns the store key for a court's settings.
func SettingsKey(provider, courtID string) string {
	return fmt.Sprintf("overlay:%s:court:%s:settings", provider, courtID)
}

// EventKey returns the store key for a court's pending event.
func EventKey(provider, courtID string) string {
	return fmt.Sprintf("overlay:%s:court:%s:event", provider, courtID)
}
