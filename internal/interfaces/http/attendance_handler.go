package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wazard-api/internal/application/dto"
)

// AttendanceService lo implementa attendance.AttendanceUseCase.
type AttendanceService interface {
	RecordEnterTime(ctx context.Context, in dto.RecordEnterTimeRequest) (*dto.RecordEnterTimeResponse, error)
	RecordExitTime(ctx context.Context, in dto.RecordExitTimeRequest) (*dto.RecordExitTimeResponse, error)
	MarkingAbsent(ctx context.Context, in dto.MarkingAbsentRequest) error
	GetMyAttendanceByDayOfTheWeek(ctx context.Context, in dto.GetAttendanceByDayOfTheWeekRequest, date time.Time) ([]dto.AttendanceByDayOfTheWeekResponse, error)
	GetAttendanceSheet(ctx context.Context, email string, companyID int64, date time.Time) ([]byte, error)
}

// AttendanceHandler maneja entrada, salida, ausencias y consultas de asistencia.
type AttendanceHandler struct {
	svc AttendanceService
	now func() time.Time
}

// NewAttendanceHandler construye el handler; now da la fecha por defecto de las consultas.
func NewAttendanceHandler(svc AttendanceService, now func() time.Time) *AttendanceHandler {
	if now == nil {
		now = time.Now
	}
	return &AttendanceHandler{svc: svc, now: now}
}

// RecordEnterTime godoc
// @Summary      Registrar entrada
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                         true  "ID de la cuenta"
// @Param        body       body  dto.RecordEnterTimeRequest  true  "companyId, tardy"
// @Success      200  {object}  dto.RecordEnterTimeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /attendance/enter/{accountId} [post]
func (h *AttendanceHandler) RecordEnterTime(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	var in dto.RecordEnterTimeRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	in.AccountID = accountID
	out, err := h.svc.RecordEnterTime(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecordExitTime godoc
// @Summary      Registrar salida
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                        true  "ID de la cuenta"
// @Param        body       body  dto.RecordExitTimeRequest  true  "companyId"
// @Success      200  {object}  dto.RecordExitTimeResponse
// @Failure      404  {object}  dto.ErrorResponse  "ENTER_RECORD_NOT_FOUND"
// @Router       /attendance/exit/{accountId} [post]
func (h *AttendanceHandler) RecordExitTime(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	var in dto.RecordExitTimeRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	in.AccountID = accountID
	out, err := h.svc.RecordExitTime(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MarkingAbsent godoc
// @Summary      Marcar ausencia
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MarkingAbsentRequest  true  "companyId, accountId del trabajador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /attendance/absent [post]
func (h *AttendanceHandler) MarkingAbsent(c *fiber.Ctx) error {
	var in dto.MarkingAbsentRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	in.Email = GetEmail(c)
	if err := h.svc.MarkingAbsent(c.UserContext(), in); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "ausencia registrada"})
}

// GetMyAttendanceByDayOfTheWeek godoc
// @Summary      Asistencia de un día
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path   int     true   "ID de la cuenta"
// @Param        companyId  query  int     true   "ID de la empresa"
// @Param        date       query  string  false  "yyyy-MM-dd (hoy por defecto)"
// @Success      200  {array}   dto.AttendanceByDayOfTheWeekResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /attendance/day-of-the-week/{accountId} [get]
func (h *AttendanceHandler) GetMyAttendanceByDayOfTheWeek(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	companyID, err := queryID(c, "companyId")
	if err != nil {
		return err
	}
	date, err := queryDate(c, "date", h.now())
	if err != nil {
		return err
	}
	out, err := h.svc.GetMyAttendanceByDayOfTheWeek(c.UserContext(), dto.GetAttendanceByDayOfTheWeekRequest{
		AccountID: accountID,
		CompanyID: companyID,
		Email:     GetEmail(c),
	}, date)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetAttendanceSheet godoc
// @Summary      Planilla PDF de asistencia del día
// @Tags         attendance
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        companyId  path   int     true   "ID de la empresa"
// @Param        date       query  string  false  "yyyy-MM-dd (hoy por defecto)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /attendance/sheet/{companyId} [get]
func (h *AttendanceHandler) GetAttendanceSheet(c *fiber.Ctx) error {
	companyID, err := pathID(c, "companyId")
	if err != nil {
		return err
	}
	date, err := queryDate(c, "date", h.now())
	if err != nil {
		return err
	}
	pdf, err := h.svc.GetAttendanceSheet(c.UserContext(), GetEmail(c), companyID, date)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="asistencia-%d-%s.pdf"`, companyID, date.Format(dto.DateLayout)))
	return c.Send(pdf)
}
