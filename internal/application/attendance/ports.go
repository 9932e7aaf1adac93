package attendance

import (
	"context"
	"time"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// SheetGenerator renderiza la planilla diaria de asistencia de una empresa.
type SheetGenerator interface {
	GenerateAttendanceSheet(ctx context.Context, company *entity.Company, date time.Time, entries []entity.AttendanceEntry) ([]byte, error)
}
