package seed

import (
	"time"

	"github.com/devcodex/codex-api/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TechnologySeeder fills the technology catalog when the table is empty.
type TechnologySeeder struct{}

func NewTechnologySeeder() *TechnologySeeder {
	return &TechnologySeeder{}
}

func (s *TechnologySeeder) Name() string { return "technology" }

func (s *TechnologySeeder) Order() int { return 1 }

func (s *TechnologySeeder) Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Technology{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("Technology table already has data, skipping seed")
		return nil
	}

	now := time.Now().UTC()
	newTechnology := func(name, description string, technologyType model.TechnologyType) model.Technology {
		return model.Technology{
			BaseField:      model.BaseField{ID: uuid.New(), CreatedAt: now},
			Name:           name,
			Description:    description,
			TechnologyType: technologyType,
		}
	}

	technologies := []model.Technology{
		newTechnology("C#", "A modern, object-oriented programming language developed by Microsoft.", model.TechnologyTypeLanguage),
		newTechnology("JavaScript", "A versatile scripting language for web development.", model.TechnologyTypeLanguage),
		newTechnology("TypeScript", "A typed superset of JavaScript that compiles to plain JavaScript.", model.TechnologyTypeLanguage),
		newTechnology("Python", "A high-level, interpreted programming language known for its readability.", model.TechnologyTypeLanguage),
		newTechnology("Go", "A statically typed, compiled language designed for simplicity and concurrency.", model.TechnologyTypeLanguage),
		newTechnology("ASP.NET Core", "A cross-platform, high-performance framework for building modern web applications.", model.TechnologyTypeFramework),
		newTechnology("Angular", "A platform for building mobile and desktop web applications.", model.TechnologyTypeFramework),
		newTechnology("React", "A JavaScript library for building user interfaces.", model.TechnologyTypeFramework),
		newTechnology("Entity Framework Core", "A modern object-database mapper for .NET.", model.TechnologyTypeLibrary),
		newTechnology("PostgreSQL", "A powerful, open source object-relational database system.", model.TechnologyTypeDatabase),
		newTechnology("SQL Server", "A relational database management system developed by Microsoft.", model.TechnologyTypeDatabase),
		newTechnology("Docker", "A platform for developing, shipping, and running applications in containers.", model.TechnologyTypeTool),
		newTechnology("Git", "A distributed version control system.", model.TechnologyTypeTool),
	}

	if err := db.Create(&technologies).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(technologies)).Msg("Seeded technology table")
	return nil
}
