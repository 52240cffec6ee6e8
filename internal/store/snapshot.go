package store

import (
	"encoding/json"
	"fmt"

	"github.com/sadopc/fitadapt/internal/fitness"
)

// snapshot is the on-disk envelope around the state blob. The version
// field exists so a future format change can migrate old blobs instead
// of discarding them.
type snapshot struct {
	Version int            `json:"version"`
	State   *fitness.State `json:"state"`
}

// Load reads the saved state. A missing or unparseable snapshot yields
// a fresh default state rather than an error; only real database
// failures propagate.
func (s *Store) Load() (*fitness.State, error) {
	blob, err := s.readBlob(stateKey)
	if err == errNotFound {
		return fitness.NewState(), nil
	}
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil || snap.State == nil {
		// Corrupt blob: start fresh. The old blob is overwritten on
		// the next save.
		return fitness.NewState(), nil
	}

	repair(snap.State)
	return snap.State, nil
}

// Save writes the whole state back as one blob.
func (s *Store) Save(st *fitness.State) error {
	blob, err := json.Marshal(snapshot{Version: currentVersion, State: st})
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.writeBlob(stateKey, blob)
}

// repair default-fills fields a hand-edited or older blob may lack.
func repair(st *fitness.State) {
	if st.Theme == "" {
		st.Theme = fitness.ThemeDark
	}
	if len(st.Achievements) == 0 {
		st.Achievements = fitness.DefaultAchievements()
		return
	}
	// Merge in achievements added since the blob was written, keeping
	// existing unlock state.
	have := make(map[string]bool, len(st.Achievements))
	for _, a := range st.Achievements {
		have[a.ID] = true
	}
	for _, a := range fitness.DefaultAchievements() {
		if !have[a.ID] {
			st.Achievements = append(st.Achievements, a)
		}
	}
}
