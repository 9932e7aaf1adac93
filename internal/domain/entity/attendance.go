package entity

import "time"

// EnterRecord registro de entrada (inicio de turno) de una cuenta en una empresa.
type EnterRecord struct {
	ID        int64
	AccountID int64
	CompanyID int64
	EnterDate time.Time // solo fecha
	EnterTime time.Time
	Tardy     bool
}

// ExitRecord registro de salida ligado a un EnterRecord (máximo uno por entrada).
type ExitRecord struct {
	ID            int64
	EnterRecordID int64
	ExitDate      time.Time
	ExitTime      time.Time
}

// AbsentRecord marca de ausencia de un trabajador para un día.
type AbsentRecord struct {
	ID         int64
	AccountID  int64
	CompanyID  int64
	AbsentDate time.Time
	MarkedBy   int64 // cuenta empleadora que registró la ausencia
	CreatedAt  time.Time
}

// Attendance criterio de consulta de asistencia de un día.
type Attendance struct {
	AccountID int64
	CompanyID int64
	Date      time.Time
}

// AttendanceEntry fila de lectura: entrada con su salida opcional.
type AttendanceEntry struct {
	AccountID int64
	UserName  string
	EnterTime time.Time
	ExitTime  *time.Time
	Tardy     bool
}

// DateOnly trunca t a medianoche en su propia zona horaria.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
