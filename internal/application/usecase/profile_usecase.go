package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// StaffTxRunner ejecuta fn con repos de usuarios y perfiles en una misma transacción.
type StaffTxRunner interface {
	RunStaff(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// ProfileUseCase administración de usuarios y perfiles.
type ProfileUseCase struct {
	tx          StaffTxRunner
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(tx StaffTxRunner, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{tx: tx, userRepo: userRepo, profileRepo: profileRepo, now: time.Now}
}

// List lista usuarios con perfil, contratados más recientemente primero.
func (uc *ProfileUseCase) List(ctx context.Context, q dto.ProfileListQuery) (*dto.StaffListResponse, error) {
	q.DefaultPage()
	filter := repository.ProfileFilter{
		Department: strings.TrimSpace(q.Department),
		Search:     strings.TrimSpace(q.Search),
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	if q.Role != "" {
		role, err := entity.ParseRole(q.Role)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.Role = &role
	}
	if q.Active != "" {
		active, err := strconv.ParseBool(q.Active)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.Active = &active
	}
	list, err := uc.profileRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StaffResponse{
			User:    ToUserResponse(&s.User),
			Profile: *ToProfileResponse(&s.Profile),
		})
	}
	return &dto.StaffListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// CreateStaff crea el usuario y su perfil en una transacción.
// El rol por defecto es vendedor y la fecha de contratación es hoy.
func (uc *ProfileUseCase) CreateStaff(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	role := entity.RoleVendedor
	if in.Role != "" {
		r, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		role = r
	}
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Role:       role,
		Phone:      in.Phone,
		Department: in.Department,
		HireDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Active:     true,
	}

	err = uc.tx.RunStaff(ctx, func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) error {
		existing, err := userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrUsernameTaken
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		return profileRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return &dto.StaffResponse{User: ToUserResponse(user), Profile: *ToProfileResponse(profile)}, nil
}

// UpdateProfile cambia rol, estado, teléfono o departamento. La fecha de contratación no cambia.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if in.Role != nil {
		role, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		profile.Role = role
	}
	if in.Phone != nil {
		profile.Phone = in.Phone
	}
	if in.Department != nil {
		profile.Department = in.Department
	}
	if in.Active != nil {
		profile.Active = *in.Active
	}
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// DeleteUser elimina el usuario y, en cascada, su perfil. Nadie puede eliminarse a sí mismo.
func (uc *ProfileUseCase) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domain.ErrConflict
	}
	return uc.userRepo.Delete(ctx, userID)
}

// StaffSeed datos de un usuario de prueba.
type StaffSeed struct {
	Username   string
	Password   string
	Email      string
	FirstName  string
	LastName   string
	Role       entity.Role
	Department string
	Phone      string
}

// DefaultStaff usuarios de prueba, uno por rol.
func DefaultStaff() []StaffSeed {
	return []StaffSeed{
		{Username: "vendedor1", Password: "vendedor123", Email: "vendedor1@tienda.com", FirstName: "Juan", LastName: "Pérez", Role: entity.RoleVendedor, Department: "Ventas", Phone: "555-1111"},
		{Username: "gerente1", Password: "gerente123", Email: "gerente1@tienda.com", FirstName: "María", LastName: "González", Role: entity.RoleGerente, Department: "Gerencia", Phone: "555-2222"},
		{Username: "admin1", Password: "admin123", Email: "admin1@tienda.com", FirstName: "Carlos", LastName: "Rodríguez", Role: entity.RoleAdministrador, Department: "Sistemas", Phone: "555-3333"},
	}
}

// SeedResult resultado por usuario sembrado.
type SeedResult struct {
	Username string
	Role     entity.Role
	Created  bool // false si ya existía
}

// Seed crea los usuarios que no existan; los existentes se reportan sin modificarse.
func (uc *ProfileUseCase) Seed(ctx context.Context, seeds []StaffSeed) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(seeds))
	for _, s := range seeds {
		phone, department := s.Phone, s.Department
		_, err := uc.CreateStaff(ctx, dto.CreateStaffRequest{
			Username:   s.Username,
			Password:   s.Password,
			Email:      s.Email,
			FirstName:  s.FirstName,
			LastName:   s.LastName,
			Role:       string(s.Role),
			Phone:      &phone,
			Department: &department,
		})
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			results = append(results, SeedResult{Username: s.Username, Role: s.Role})
		case err != nil:
			return results, err
		default:
			results = append(results, SeedResult{Username: s.Username, Role: s.Role, Created: true})
		}
	}
	return results, nil
}

// ToUserResponse convierte la entidad a DTO sin el hash de la contraseña.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// ToProfileResponse convierte el perfil a DTO incluyendo sus permisos.
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Role:        string(p.Role),
		RoleDisplay: p.Role.Display(),
		Phone:       p.Phone,
		Department:  p.Department,
		HireDate:    p.HireDate,
		Active:      p.Active,
		CanRead:     p.CanRead(),
		CanWrite:    p.CanWrite(),
		CanDelete:   p.CanDelete(),
	}
}
