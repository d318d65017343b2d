package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput is the full JSON output document.
type jsonOutput struct {
	Root     string      `json:"root"`
	Manifest string      `json:"manifest"`
	Algo     string      `json:"algorithm"`
	Files    int         `json:"files,omitempty"`
	Bytes    int64       `json:"bytes,omitempty"`
	Duration string      `json:"duration"`
	Report   *jsonReport `json:"report,omitempty"`
}

// jsonReport is the verification section of JSON output.
type jsonReport struct {
	Valid      bool     `json:"valid"`
	Checked    int      `json:"checked"`
	Mismatched []string `json:"mismatched"`
	Missing    []string `json:"missing"`
	Extra      []string `json:"extra"`
}

// JSONFormatter renders results as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	doc := jsonOutput{
		Root:     r.Root,
		Manifest: r.ManifestPath,
		Algo:     r.Algorithm,
		Files:    r.Files,
		Bytes:    r.Bytes,
		Duration: r.Elapsed.String(),
	}
	if rep := r.Report; rep != nil {
		doc.Report = &jsonReport{
			Valid:      rep.Clean(),
			Checked:    rep.Checked,
			Mismatched: emptyIfNil(rep.Mismatched),
			Missing:    emptyIfNil(rep.Missing),
			Extra:      emptyIfNil(rep.Extra),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// emptyIfNil keeps JSON arrays as [] instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
