package app

import (
	"gorm.io/gorm"

	"github.com/sigc-piloto/sigc-backend/internal/data/repos"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type Repos struct {
	Institution repos.InstitutionRepo
	Record      repos.RecordRepo
	Unit        repos.UnitRepo
	Project     repos.ProjectRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Institution: repos.NewInstitutionRepo(db, log),
		Record:      repos.NewRecordRepo(db, log),
		Unit:        repos.NewUnitRepo(db, log),
		Project:     repos.NewProjectRepo(db, log),
	}
}
