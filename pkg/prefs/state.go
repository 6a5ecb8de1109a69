package prefs

import "encoding/json"

// StorageKey is the name of the durable snapshot record.
const StorageKey = "ui-storage"

// DurablePreferences is the subset of state that survives restarts.
type DurablePreferences struct {
	Theme Theme `json:"theme"`
}

// TransientPreferences live for one process only.
type TransientPreferences struct {
	SidebarOpen bool `json:"sidebarOpen"`
	IsLoading   bool `json:"isLoading"`
}

// State is the full preference state.
type State struct {
	DurablePreferences
	TransientPreferences
}

// DefaultState returns the state of a store with no snapshot.
func DefaultState() State {
	return State{
		DurablePreferences:   DurablePreferences{Theme: DefaultTheme},
		TransientPreferences: TransientPreferences{SidebarOpen: true, IsLoading: false},
	}
}

// Project returns the durable subset of s.
func Project(s State) DurablePreferences {
	return s.DurablePreferences
}

// encodeSnapshot renders the record stored under StorageKey.
func encodeSnapshot(d DurablePreferences) ([]byte, error) {
	return json.Marshal(d)
}

// decodeSnapshot extracts the durable preferences from a stored record. It
// accepts the bare record and the {"state":{...},"version":n} envelope
// written by zustand's persist middleware. ok is false when neither form
// holds a valid theme.
func decodeSnapshot(data []byte) (d DurablePreferences, ok bool) {
	var record struct {
		Theme *string `json:"theme"`
		State *struct {
			Theme *string `json:"theme"`
		} `json:"state"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return DurablePreferences{}, false
	}

	if record.Theme != nil {
		if t := Theme(*record.Theme); t.Valid() {
			return DurablePreferences{Theme: t}, true
		}
	}
	if record.State != nil && record.State.Theme != nil {
		if t := Theme(*record.State.Theme); t.Valid() {
			return DurablePreferences{Theme: t}, true
		}
	}
	return DurablePreferences{}, false
}
