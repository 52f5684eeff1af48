package response_models

import (
	"encoding/json"
	"time"
)

// Snapshot is one history entry: a server-assigned capture time plus
// whatever flat metric fields the caller sent. On the wire it is a
// single flat object with the capture time under "date".
type Snapshot struct {
	Date   time.Time
	Fields map[string]any
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Fields)+1)
	for k, v := range s.Fields {
		out[k] = v
	}
	out["date"] = s.Date.UTC().Format(time.RFC3339)
	return json.Marshal(out)
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["date"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			s.Date = t
		}
	}
	delete(raw, "date")
	s.Fields = raw
	return nil
}
