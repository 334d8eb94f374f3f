package model

import "strings"

// DefaultBundleID is the bundle identifier of Google Chrome.
const DefaultBundleID = "com.google.Chrome"

// Target identifies the application whose windows are cycled.
type Target struct {
	BundleID string `yaml:"bundle_id"      json:"bundle_id"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
}

// DisplayName returns the human-readable name, falling back to the bundle ID.
func (t Target) DisplayName() string {
	if strings.TrimSpace(t.Name) != "" {
		return t.Name
	}
	return t.BundleID
}

func (t Target) String() string {
	return t.DisplayName()
}
