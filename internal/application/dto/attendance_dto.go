package dto

import "time"

// RecordEnterTimeRequest entrada para registrar la hora de entrada.
type RecordEnterTimeRequest struct {
	AccountID int64 `json:"-"`
	CompanyID int64 `json:"companyId" validate:"required,gt=0"`
	Tardy     bool  `json:"tardy"`
}

// RecordExitTimeRequest entrada para registrar la hora de salida.
type RecordExitTimeRequest struct {
	AccountID int64 `json:"-"`
	CompanyID int64 `json:"companyId" validate:"required,gt=0"`
}

// MarkingAbsentRequest el empleador (Email) marca ausente al trabajador AccountID.
type MarkingAbsentRequest struct {
	Email     string `json:"-"`
	CompanyID int64  `json:"companyId" validate:"required,gt=0"`
	AccountID int64  `json:"accountId" validate:"required,gt=0"`
}

// GetAttendanceByDayOfTheWeekRequest consulta de asistencia de un día.
type GetAttendanceByDayOfTheWeekRequest struct {
	AccountID int64
	CompanyID int64
	Email     string
}

// AttendanceByDayOfTheWeekResponse una entrada con su salida (si existe).
type AttendanceByDayOfTheWeekResponse struct {
	AccountID int64      `json:"accountId"`
	UserName  string     `json:"userName"`
	EnterTime time.Time  `json:"enterTime"`
	ExitTime  *time.Time `json:"exitTime"`
	Tardy     bool       `json:"tardy"`
}

// RecordEnterTimeResponse salida del registro de entrada.
type RecordEnterTimeResponse struct {
	EnterRecordID int64     `json:"enterRecordId"`
	EnterTime     time.Time `json:"enterTime"`
}

// RecordExitTimeResponse salida del registro de salida.
type RecordExitTimeResponse struct {
	EnterRecordID int64     `json:"enterRecordId"`
	ExitTime      time.Time `json:"exitTime"`
}
