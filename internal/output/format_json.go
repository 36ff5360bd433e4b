package output

import (
	"encoding/json"

	"github.com/supplylab/contractlab/internal/domain"
)

// JSONFormatter emits the evaluation as indented JSON, matching the
// structured output contract consumed by rendering collaborators.
type JSONFormatter struct{}

// Format marshals the evaluation. Errors marshal as an empty (not null)
// list on success so consumers can key off len(errors) alone.
func (jf *JSONFormatter) Format(eval domain.Evaluation) ([]byte, error) {
	if eval.Errors == nil {
		eval.Errors = []string{}
	}
	return json.MarshalIndent(eval, "", "  ")
}
