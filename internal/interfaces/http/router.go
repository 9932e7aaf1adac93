package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC    AccountService
	CompanyUC    CompanyService
	AttendanceUC AttendanceService
	JWTSecret    string
	Now          func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	accountHandler := NewAccountHandler(deps.AccountUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC, deps.Now)

	auth := AuthMiddleware(deps.JWTSecret)
	owner := Certification("accountId")
	employer := RequireRole(entity.RoleEmployer)

	// Account (join y login públicos)
	account := app.Group("/account")
	account.Post("/members/join", accountHandler.JoinMember)
	account.Post("/companies/join", accountHandler.JoinCompany)
	account.Post("/login", accountHandler.Login)
	account.Get("/my-profile/:accountId", auth, owner, accountHandler.GetMyProfile)
	account.Patch("/my-profile/:accountId", auth, owner, accountHandler.UpdateMyProfile)

	// Company
	company := app.Group("/company", auth)
	company.Post("/register/:accountId", owner, companyHandler.RegisterCompany)
	company.Patch("/info/:accountId", owner, companyHandler.UpdateCompanyInfo)
	company.Get("/info/:accountId/:companyId", owner, companyHandler.GetCompanyInfo)

	// Attendance
	attendance := app.Group("/attendance", auth)
	attendance.Post("/enter/:accountId", owner, attendanceHandler.RecordEnterTime)
	attendance.Post("/exit/:accountId", owner, attendanceHandler.RecordExitTime)
	attendance.Get("/day-of-the-week/:accountId", owner, attendanceHandler.GetMyAttendanceByDayOfTheWeek)
	attendance.Post("/absent", employer, attendanceHandler.MarkingAbsent)
	attendance.Get("/sheet/:companyId", employer, attendanceHandler.GetAttendanceSheet)
}
