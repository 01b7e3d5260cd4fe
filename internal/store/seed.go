// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/MKhiriev/go-cheat-catalog/models"
)

//go:embed seed/catalog.yaml
var seedCatalogYAML []byte

// SeedCatalog is the fallback catalog returned while the profile holds no
// games or cheats of its own.
type SeedCatalog struct {
	Games  []models.Game  `yaml:"games"`
	Cheats []models.Cheat `yaml:"cheats"`
}

// LoadSeedCatalog parses the embedded seed catalog.
func LoadSeedCatalog() (SeedCatalog, error) {
	return parseSeedCatalog(seedCatalogYAML)
}

func parseSeedCatalog(data []byte) (SeedCatalog, error) {
	var seed SeedCatalog
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedCatalog{}, fmt.Errorf("error parsing seed catalog: %w", err)
	}

	for i := range seed.Cheats {
		if seed.Cheats[i].Tags == nil {
			seed.Cheats[i].Tags = []string{}
		}
	}

	return seed, nil
}

// games returns a copy safe for callers to modify.
func (s SeedCatalog) games() []models.Game {
	return slices.Clone(s.Games)
}

func (s SeedCatalog) cheats() []models.Cheat {
	out := make([]models.Cheat, len(s.Cheats))
	for i, c := range s.Cheats {
		c.Tags = slices.Clone(c.Tags)
		out[i] = c
	}
	return out
}
