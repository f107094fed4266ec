package compare

import (
	"encoding/json"
)

// JSONFormatter renders a comparison set as JSON, for piping into other tools
type JSONFormatter struct {
	Pretty bool
}

// Format renders the comparison set
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if jf.Pretty {
		data, err := json.MarshalIndent(compSet, "", "  ")
		return string(data), err
	}
	data, err := json.Marshal(compSet)
	return string(data), err
}
