package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wazard-api/internal/application/dto"
)

// CompanyService lo implementa usecase.CompanyUseCase.
type CompanyService interface {
	RegisterCompany(ctx context.Context, accountID int64, in dto.RegisterCompanyRequest) (*dto.CompanyResponse, error)
	UpdateCompanyInfo(ctx context.Context, accountID int64, in dto.UpdateCompanyInfoRequest) (*dto.CompanyResponse, error)
	GetCompanyInfo(ctx context.Context, accountID, companyID int64) (*dto.CompanyResponse, error)
}

// CompanyHandler maneja las peticiones HTTP de empresas.
type CompanyHandler struct {
	svc CompanyService
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(svc CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// RegisterCompany godoc
// @Summary      Registrar empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                         true  "ID de la cuenta dueña"
// @Param        body       body  dto.RegisterCompanyRequest  true  "datos de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company/register/{accountId} [post]
func (h *CompanyHandler) RegisterCompany(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	var in dto.RegisterCompanyRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.RegisterCompany(c.UserContext(), accountID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCompanyInfo godoc
// @Summary      Actualizar empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                           true  "ID de la cuenta dueña"
// @Param        body       body  dto.UpdateCompanyInfoRequest  true  "companyId y campos a cambiar"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company/info/{accountId} [patch]
func (h *CompanyHandler) UpdateCompanyInfo(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	var in dto.UpdateCompanyInfoRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateCompanyInfo(c.UserContext(), accountID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetCompanyInfo godoc
// @Summary      Ver empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int  true  "ID de la cuenta"
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company/info/{accountId}/{companyId} [get]
func (h *CompanyHandler) GetCompanyInfo(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	companyID, err := pathID(c, "companyId")
	if err != nil {
		return err
	}
	out, err := h.svc.GetCompanyInfo(c.UserContext(), accountID, companyID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
