// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"
)

// Well-known setting keys.
const (
	SettingAutoApprovePoetry       = "autoApprovePoetry"
	SettingPoetRegistrationEnabled = "poetRegistrationEnabled"
	SettingFeaturedPoetryLimit     = "featuredPoetryLimit"
	SettingSessionTimeout          = "sessionTimeout"
	SettingMaintenanceMode         = "maintenanceMode"
)

// Setting is a single operator-tunable key/value pair. Values are stored as
// strings and interpreted by the typed accessors.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoolValue interprets the value as a boolean, defaulting to false.
func (s *Setting) BoolValue() bool {
	v, err := strconv.ParseBool(s.Value)
	return err == nil && v
}

// IntValue interprets the value as an integer, falling back to def.
func (s *Setting) IntValue(def int) int {
	v, err := strconv.Atoi(s.Value)
	if err != nil {
		return def
	}
	return v
}

// ModerationSettings is the snapshot of the settings the submission and
// moderation paths consult. It is loaded per request and passed in
// explicitly; nothing in the core reads settings ambiently.
type ModerationSettings struct {
	AutoApprovePoetry       bool
	PoetRegistrationEnabled bool
	FeaturedPoetryLimit     int
	MaintenanceMode         bool
}

// DefaultModerationSettings returns the snapshot used when a key has never
// been written. New poetry requires review, poet registration is open.
func DefaultModerationSettings() ModerationSettings {
	return ModerationSettings{
		AutoApprovePoetry:       false,
		PoetRegistrationEnabled: true,
		FeaturedPoetryLimit:     10,
		MaintenanceMode:         false,
	}
}
