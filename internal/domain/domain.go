package domain

import (
	"github.com/sigc-piloto/sigc-backend/internal/domain/catalog"
	"github.com/sigc-piloto/sigc-backend/internal/domain/registro"
)

type Institution = catalog.Institution

type InstitutionalRecord = registro.InstitutionalRecord
type ResearchUnit = registro.ResearchUnit
type ResearchProject = registro.ResearchProject
type ProjectType = registro.ProjectType
type Fecha = registro.Fecha

const (
	ProjectExterno = registro.ProjectExterno
	ProjectInterno = registro.ProjectInterno
	DefaultEstado  = registro.DefaultEstado
)

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Institution{},
		&InstitutionalRecord{},
		&ResearchUnit{},
		&ResearchProject{},
	}
}
