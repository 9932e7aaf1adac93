package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wazard-api/internal/application/dto"
)

// AccountService lo implementa account.AccountUseCase.
type AccountService interface {
	JoinMember(ctx context.Context, in dto.JoinRequest) (*dto.JoinResponse, error)
	JoinCompany(ctx context.Context, in dto.JoinRequest) (*dto.JoinResponse, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	GetMyProfile(ctx context.Context, accountID int64) (*dto.MyProfileResponse, error)
	UpdateMyProfile(ctx context.Context, accountID int64, in dto.UpdateMyProfileRequest) (*dto.MyProfileResponse, error)
}

// AccountHandler maneja registro, login y perfil.
type AccountHandler struct {
	svc AccountService
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// JoinMember godoc
// @Summary      Registrar trabajador
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JoinRequest  true  "datos de la cuenta"
// @Success      200   {object}  dto.JoinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /account/members/join [post]
func (h *AccountHandler) JoinMember(c *fiber.Ctx) error {
	var in dto.JoinRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.JoinMember(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// JoinCompany godoc
// @Summary      Registrar cuenta empleadora
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JoinRequest  true  "datos de la cuenta"
// @Success      200   {object}  dto.JoinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /account/companies/join [post]
func (h *AccountHandler) JoinCompany(c *fiber.Ctx) error {
	var in dto.JoinRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.JoinCompany(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /account/login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetMyProfile godoc
// @Summary      Ver mi perfil
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int  true  "ID de la cuenta"
// @Success      200  {object}  dto.MyProfileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /account/my-profile/{accountId} [get]
func (h *AccountHandler) GetMyProfile(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	out, err := h.svc.GetMyProfile(c.UserContext(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateMyProfile godoc
// @Summary      Actualizar mi perfil
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accountId  path  int                         true  "ID de la cuenta"
// @Param        body       body  dto.UpdateMyProfileRequest  true  "campos editables"
// @Success      200  {object}  dto.MyProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /account/my-profile/{accountId} [patch]
func (h *AccountHandler) UpdateMyProfile(c *fiber.Ctx) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}
	var in dto.UpdateMyProfileRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateMyProfile(c.UserContext(), accountID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
