package checker

import (
	"encoding/json"
	"fmt"
)

// SerializableCheck is the transport-neutral projection of one CheckResponse:
// the outcome as its string tag and the severity as its integer weight.
type SerializableCheck struct {
	Name          string `json:"name"`
	Result        string `json:"result"`
	SeverityScore int    `json:"severity_score"`
	Message       string `json:"message"`
}

// SerializableReport is the transport-neutral projection of a Report.
type SerializableReport struct {
	URL          string              `json:"url"`
	CheckResults []SerializableCheck `json:"check_results"`
}

// Serializable projects a Report with no information loss. The projection is
// pure: the same report always yields the same structure, independent of any
// map iteration order inside the engine.
func Serializable(r Report) SerializableReport {
	out := SerializableReport{
		URL:          r.URL,
		CheckResults: make([]SerializableCheck, 0, len(r.CheckResults)),
	}
	for _, cr := range r.CheckResults {
		out.CheckResults = append(out.CheckResults, SerializableCheck{
			Name:          cr.Name,
			Result:        string(cr.Outcome),
			SeverityScore: int(cr.SeverityScore),
			Message:       cr.Message,
		})
	}
	return out
}

// ToJSON marshals the serializable projection of r.
func ToJSON(r Report) ([]byte, error) {
	data, err := json.Marshal(Serializable(r))
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// ToJSONIndent marshals the serializable projection of r with indentation,
// for human-facing output.
func ToJSONIndent(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(Serializable(r), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
