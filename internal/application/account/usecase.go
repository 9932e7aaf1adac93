package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/wazard-api/internal/application/dto"
	"github.com/jhoicas/wazard-api/internal/application/ports"
	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
	"github.com/jhoicas/wazard-api/internal/domain/repository"
	"github.com/jhoicas/wazard-api/pkg/jwt"
	"github.com/jhoicas/wazard-api/pkg/logger"
)

// JoinSuccessMessage mensaje devuelto al registrarse.
const JoinSuccessMessage = "registro de cuenta exitoso"

// notifyTimeout límite del envío del correo de bienvenida en segundo plano.
const notifyTimeout = 30 * time.Second

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AccountUseCase casos de uso de cuentas: registro, login y perfil.
type AccountUseCase struct {
	repo     repository.AccountRepository
	encoder  ports.PasswordEncoder
	tx       ports.TxManager
	notifier ports.WelcomeNotifier
	clock    ports.Clock
	jwtCfg   JWTConfig
	log      *logger.Logger
	pending  sync.WaitGroup
}

// Deps dependencias opcionales; los nil se reemplazan por implementaciones no-op.
type Deps struct {
	Tx       ports.TxManager
	Notifier ports.WelcomeNotifier
	Clock    ports.Clock
	Logger   *logger.Logger
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(repo repository.AccountRepository, encoder ports.PasswordEncoder, jwtCfg JWTConfig, deps Deps) *AccountUseCase {
	uc := &AccountUseCase{
		repo:     repo,
		encoder:  encoder,
		tx:       deps.Tx,
		notifier: deps.Notifier,
		clock:    deps.Clock,
		jwtCfg:   jwtCfg,
		log:      deps.Logger,
	}
	if uc.tx == nil {
		uc.tx = ports.NoopTxManager{}
	}
	if uc.notifier == nil {
		uc.notifier = ports.NoopNotifier{}
	}
	if uc.clock == nil {
		uc.clock = ports.SystemClock{}
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	return uc
}

// JoinMember registra una cuenta de trabajador (rol EMPLOYEE).
func (uc *AccountUseCase) JoinMember(ctx context.Context, in dto.JoinRequest) (*dto.JoinResponse, error) {
	return uc.join(ctx, in, entity.RoleEmployee)
}

// JoinCompany registra una cuenta de empleador (rol EMPLOYER).
func (uc *AccountUseCase) JoinCompany(ctx context.Context, in dto.JoinRequest) (*dto.JoinResponse, error) {
	return uc.join(ctx, in, entity.RoleEmployer)
}

// join verifica que el email no exista, hashea el password y persiste la cuenta en una transacción.
// Devuelve domain.ErrDuplicateEmail si el email ya está registrado.
func (uc *AccountUseCase) join(ctx context.Context, in dto.JoinRequest, role string) (*dto.JoinResponse, error) {
	profile, err := buildProfile(in.UserName, in.PhoneNumber, in.Gender, in.Birth)
	if err != nil {
		return nil, err
	}
	profile.Email = NormalizeEmail(in.Email)
	if profile.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	err = uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		exists, err := uc.repo.ExistsByEmail(txCtx, profile.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateEmail
		}
		hash, err := uc.encoder.Encode(in.Password)
		if err != nil {
			return err
		}
		profile.Password = hash
		now := uc.clock.Now()
		acc := &entity.Account{
			Profile:   profile,
			Roles:     role,
			State:     entity.AccountStateActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return uc.repo.Create(txCtx, acc)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyJoined(ctx, profile.Email, profile.UserName)
	return &dto.JoinResponse{Message: JoinSuccessMessage}, nil
}

// notifyJoined envía el correo de bienvenida sin bloquear la respuesta.
// El contexto se separa del request para que no se cancele al responder.
func (uc *AccountUseCase) notifyJoined(ctx context.Context, email, userName string) {
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		defer cancel()
		if err := uc.notifier.NotifyJoined(bg, email, userName); err != nil {
			uc.log.Warn().Err(err).Str("email", email).Msg("no se pudo enviar correo de bienvenida")
		}
	}()
}

// Wait espera los correos de bienvenida en curso (apagado ordenado).
func (uc *AccountUseCase) Wait() {
	uc.pending.Wait()
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AccountUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	var acc *entity.Account
	err := uc.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		sec, err := uc.repo.FindForSecurity(txCtx, email)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrUnauthorized
			}
			return err
		}
		if !uc.encoder.Matches(in.Password, sec.Profile.Password) {
			return domain.ErrUnauthorized
		}
		if !sec.IsActive() {
			return domain.ErrForbidden
		}
		acc, err = uc.repo.FindByEmail(txCtx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.ID, acc.Profile.Email, acc.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: toMyProfileResponse(acc)}, nil
}

// GetMyProfile devuelve el perfil de la cuenta.
func (uc *AccountUseCase) GetMyProfile(ctx context.Context, accountID int64) (*dto.MyProfileResponse, error) {
	var acc *entity.Account
	err := uc.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = uc.repo.FindByID(txCtx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toMyProfileResponse(acc)
	return &out, nil
}

// UpdateMyProfile actualiza nombre, teléfono, género y fecha de nacimiento.
func (uc *AccountUseCase) UpdateMyProfile(ctx context.Context, accountID int64, in dto.UpdateMyProfileRequest) (*dto.MyProfileResponse, error) {
	profile, err := buildProfile(in.UserName, in.PhoneNumber, in.Gender, in.Birth)
	if err != nil {
		return nil, err
	}
	var acc *entity.Account
	err = uc.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		var err error
		acc, err = uc.repo.FindByID(txCtx, accountID)
		if err != nil {
			return err
		}
		acc.Profile.UserName = profile.UserName
		acc.Profile.PhoneNumber = profile.PhoneNumber
		acc.Profile.Gender = profile.Gender
		acc.Profile.Birth = profile.Birth
		acc.UpdatedAt = uc.clock.Now()
		return uc.repo.UpdateProfile(txCtx, acc)
	})
	if err != nil {
		return nil, err
	}
	out := toMyProfileResponse(acc)
	return &out, nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// buildProfile valida y normaliza los campos editables del perfil.
// El nombre se normaliza a NFC para que el mismo texto en Hangul compuesto/descompuesto sea idéntico.
func buildProfile(userName, phone, gender, birth string) (entity.MyProfile, error) {
	name := norm.NFC.String(strings.TrimSpace(userName))
	if name == "" {
		return entity.MyProfile{}, domain.ErrInvalidInput
	}
	g := entity.GenderType(strings.ToUpper(strings.TrimSpace(gender)))
	if !g.Valid() {
		return entity.MyProfile{}, domain.ErrInvalidInput
	}
	b, err := time.Parse(dto.DateLayout, strings.TrimSpace(birth))
	if err != nil {
		return entity.MyProfile{}, domain.ErrInvalidInput
	}
	return entity.MyProfile{
		UserName:    name,
		PhoneNumber: strings.TrimSpace(phone),
		Gender:      g,
		Birth:       b,
	}, nil
}

func toMyProfileResponse(a *entity.Account) dto.MyProfileResponse {
	return dto.MyProfileResponse{
		AccountID:   a.ID,
		Email:       a.Profile.Email,
		UserName:    a.Profile.UserName,
		PhoneNumber: a.Profile.PhoneNumber,
		Gender:      string(a.Profile.Gender),
		Birth:       a.Profile.Birth.Format(dto.DateLayout),
		Roles:       a.Roles,
		State:       a.State,
		CreatedAt:   a.CreatedAt,
	}
}
