// Package seed provides the fixture data the store starts with.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"marcenaria_gestao/internal/domain/entities"
)

//go:embed seed.json
var seedJSON []byte

// Load decodes the embedded fixtures.
func Load() (entities.Snapshot, error) {
	var snap entities.Snapshot
	if err := json.Unmarshal(seedJSON, &snap); err != nil {
		return entities.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}
	return snap, nil
}
