package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OutputFileName is the name of the generated document, written next to the
// input template.
const OutputFileName = "generated-cloud-init.yaml"

// OutputPath returns where the generated document for inputPath is written.
func OutputPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), OutputFileName)
}

// WriteOutput writes the document to path, replacing any existing file.
// The document carries secrets, so it is not world-readable.
func WriteOutput(path, document string) error {
	if err := os.WriteFile(path, []byte(document), 0600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Lint reports whether the document parses as YAML. It does not check the
// cloud-config schema.
func Lint(document string) error {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(document), &node); err != nil {
		return fmt.Errorf("generated document is not valid YAML: %w", err)
	}
	return nil
}

// Echo prints the document followed by the confirmation line naming path.
func Echo(w io.Writer, document, path string) error {
	_, err := fmt.Fprintf(w, "%s\n\nProcessed cloud-config YAML has been written to %s\n", document, path)
	return err
}

// ReadTemplate validates and reads the template at path.
func ReadTemplate(path string) (string, error) {
	if err := ValidateTemplate(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}
