// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// WriteYAML exports the run's records to a YAML file for machine
// consumption.
func WriteYAML(papers []types.Paper, path string) error {
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
