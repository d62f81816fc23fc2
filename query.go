package econ

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression (for instance "$.npv" or
// "$.years[-1:].cumulative") against the JSON encoding of the analysis.
//
// A path matching a single element returns that element rather than a list of
// one.
func (a *Analysis) Query(path string) (any, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath does not tell a list of one answer from a single answer.
	if list, ok := v.([]any); ok && len(list) == 1 {
		v = list[0]
	}
	return v, nil
}
