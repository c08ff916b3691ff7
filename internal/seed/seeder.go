// Package seed populates empty tables with initial data on startup.
package seed

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seeder seeds one table. Seed must be a no-op when the table already has
// data.
type Seeder interface {
	Name() string
	// Order controls execution order; seeders without dependencies come
	// first.
	Order() int
	Seed(db *gorm.DB) error
}

type DatabaseSeeder struct {
	seeders []Seeder
}

func NewDatabaseSeeder() *DatabaseSeeder {
	seeders := []Seeder{
		NewTechnologySeeder(),
	}
	sort.Slice(seeders, func(i, j int) bool { return seeders[i].Order() < seeders[j].Order() })
	return &DatabaseSeeder{seeders: seeders}
}

func (s *DatabaseSeeder) SeedAll(db *gorm.DB) error {
	for _, seeder := range s.seeders {
		log.Info().Str("seeder", seeder.Name()).Msg("Running seeder")
		if err := seeder.Seed(db); err != nil {
			return fmt.Errorf("seeder %s failed: %w", seeder.Name(), err)
		}
	}
	return nil
}
