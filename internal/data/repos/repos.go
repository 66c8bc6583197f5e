package repos

import (
	"gorm.io/gorm"

	"github.com/sigc-piloto/sigc-backend/internal/data/repos/catalog"
	"github.com/sigc-piloto/sigc-backend/internal/data/repos/registro"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

type InstitutionRepo = catalog.InstitutionRepo

type RecordRepo = registro.RecordRepo
type UnitRepo = registro.UnitRepo
type ProjectRepo = registro.ProjectRepo

type RecordFilter = registro.RecordFilter
type RecordSummaryRow = registro.RecordSummaryRow

func NewInstitutionRepo(db *gorm.DB, baseLog *logger.Logger) InstitutionRepo {
	return catalog.NewInstitutionRepo(db, baseLog)
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger) RecordRepo {
	return registro.NewRecordRepo(db, baseLog)
}

func NewUnitRepo(db *gorm.DB, baseLog *logger.Logger) UnitRepo {
	return registro.NewUnitRepo(db, baseLog)
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return registro.NewProjectRepo(db, baseLog)
}
