package entity

import (
	"fmt"

	"github.com/milk9111/acornrun/prefabs"
)

// Prefabs bundles the specs entity builders read. Load once per scene so a
// hot-reloaded file is picked up on the next scene load.
type Prefabs struct {
	Player    *prefabs.PlayerSpec
	World     *prefabs.WorldSpec
	Artifacts prefabs.ArtifactsSpec
}

func LoadPrefabs() (*Prefabs, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: %w", err)
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: %w", err)
	}
	gadgets, err := prefabs.LoadGadgetsSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: %w", err)
	}
	return &Prefabs{Player: player, World: world, Artifacts: gadgets.Artifacts}, nil
}
