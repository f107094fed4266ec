package output

import (
	"encoding/json"
)

// JSONFormatter renders a report as JSON
type JSONFormatter struct {
	Pretty bool
}

// Name returns the format name
func (jf *JSONFormatter) Name() string { return "json" }

// Format renders the report
func (jf *JSONFormatter) Format(report *Report) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
