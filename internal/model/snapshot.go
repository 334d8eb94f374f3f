package model

import "time"

// Snapshot is the set of eligible windows captured at one instant for one
// cycle operation. It is never updated after creation.
type Snapshot struct {
	Target  Target    `yaml:"target"           json:"target"`
	Running bool      `yaml:"running"          json:"running"`
	Windows []Window  `yaml:"windows"          json:"windows"`
	Masked  int       `yaml:"masked,omitempty" json:"masked,omitempty"`
	TakenAt time.Time `yaml:"taken_at"         json:"taken_at"`
}

// Len returns the number of windows in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Windows)
}

// Empty reports whether the snapshot holds no windows.
func (s *Snapshot) Empty() bool {
	return s.Len() == 0
}

// Release frees every native handle held by the snapshot. The windows keep
// their data but can no longer be focused. Release is safe to call twice.
func (s *Snapshot) Release() {
	if s == nil {
		return
	}
	for i := range s.Windows {
		if h := s.Windows[i].Handle; h != nil {
			h.Release()
			s.Windows[i].Handle = nil
		}
	}
}

// Identities returns the (ordinal, title) pairs of the snapshot in order.
func (s *Snapshot) Identities() []Identity {
	if s == nil {
		return nil
	}
	ids := make([]Identity, len(s.Windows))
	for i, w := range s.Windows {
		ids[i] = Identity{Ordinal: w.Ordinal, Title: w.Title}
	}
	return ids
}

// Identity is the comparable part of a window entry.
type Identity struct {
	Ordinal int
	Title   string
}
