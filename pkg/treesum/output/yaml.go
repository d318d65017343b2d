package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput is the full YAML output document.
type yamlOutput struct {
	Root     string      `yaml:"root"`
	Manifest string      `yaml:"manifest"`
	Algo     string      `yaml:"algorithm"`
	Files    int         `yaml:"files,omitempty"`
	Bytes    int64       `yaml:"bytes,omitempty"`
	Duration string      `yaml:"duration"`
	Report   *yamlReport `yaml:"report,omitempty"`
}

// yamlReport is the verification section of YAML output.
type yamlReport struct {
	Valid      bool     `yaml:"valid"`
	Checked    int      `yaml:"checked"`
	Mismatched []string `yaml:"mismatched"`
	Missing    []string `yaml:"missing"`
	Extra      []string `yaml:"extra"`
}

// YAMLFormatter renders results as a YAML document.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	doc := yamlOutput{
		Root:     r.Root,
		Manifest: r.ManifestPath,
		Algo:     r.Algorithm,
		Files:    r.Files,
		Bytes:    r.Bytes,
		Duration: r.Elapsed.String(),
	}
	if rep := r.Report; rep != nil {
		doc.Report = &yamlReport{
			Valid:      rep.Clean(),
			Checked:    rep.Checked,
			Mismatched: emptyIfNil(rep.Mismatched),
			Missing:    emptyIfNil(rep.Missing),
			Extra:      emptyIfNil(rep.Extra),
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(doc)
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
