package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ferro-praxis/12week-training-program/internal/models"
)

// Serialize encodes the full state as one JSON blob.
func (s *Store) Serialize() ([]byte, error) {
	data, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profiles: %w", err)
	}
	return data, nil
}

// Deserialize decodes a persisted blob onto defaults, field by field. A
// corrupted or partially-shaped blob never aborts the load: unrecognized or
// invalid fields are dropped with a warning and everything else survives.
func Deserialize(data []byte) models.ProfileState {
	var state models.ProfileState

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		warn("profile blob unreadable, starting fresh: %v", err)
		return state
	}

	if v, ok := raw["activeProgramType"]; ok {
		var id models.ProgramID
		if err := json.Unmarshal(v, &id); err != nil {
			warn("dropping invalid activeProgramType: %v", err)
		} else if id != "" && !id.Valid() {
			warn("dropping unknown program %q", id)
		} else {
			state.ActiveProgram = id
		}
	}

	state.Bodyweight = decodeProfile(raw["bodyweightProfile"])
	state.Dumbbell = decodeProfile(raw["dumbbellProfile"])
	return state
}

func decodeProfile(raw json.RawMessage) models.Profile {
	var p models.Profile
	if len(raw) == 0 {
		return p
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		warn("dropping malformed profile: %v", err)
		return p
	}

	if v, ok := fields["startDate"]; ok {
		if err := json.Unmarshal(v, &p.StartDate); err != nil {
			warn("dropping invalid startDate: %v", err)
		}
	}
	if v, ok := fields["completedWorkouts"]; ok {
		if err := json.Unmarshal(v, &p.CompletedWorkouts); err != nil {
			warn("dropping invalid completedWorkouts: %v", err)
			p.CompletedWorkouts = nil
		}
	}
	if v, ok := fields["cardioLog"]; ok {
		if err := json.Unmarshal(v, &p.CardioLog); err != nil {
			warn("dropping invalid cardioLog: %v", err)
			p.CardioLog = nil
		}
	}
	if v, ok := fields["totalTimeTrainedMinutes"]; ok {
		if err := json.Unmarshal(v, &p.TotalTimeTrainedMinutes); err != nil {
			warn("dropping invalid totalTimeTrainedMinutes: %v", err)
		}
	}
	return p
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
