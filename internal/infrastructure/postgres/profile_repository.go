package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación de ProfileRepository (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil. Un segundo perfil para el mismo usuario viola user_id UNIQUE.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, role, phone, department, hire_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, string(p.Role), p.Phone, p.Department, p.HireDate, p.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProfileExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// FindByUserID lectura puntual usada por la verificación de roles en cada petición.
func (r *ProfileRepo) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, user_id, role, phone, department, hire_date, active
		FROM profiles WHERE user_id = $1`
	var p entity.Profile
	var role string
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &role, &p.Phone, &p.Department, &p.HireDate, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Role = entity.Role(role)
	return &p, nil
}

// Update actualiza los campos editables. hire_date nunca se modifica.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE profiles SET role = $2, phone = $3, department = $4, active = $5
		WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query, p.UserID, string(p.Role), p.Phone, p.Department, p.Active)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if !affected(tag) {
		return domain.ErrNotFound
	}
	return nil
}

// List lista usuarios con perfil, ordenados por fecha de contratación descendente.
func (r *ProfileRepo) List(ctx context.Context, f repository.ProfileFilter) ([]*entity.Staff, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Role != nil {
		add("p.role = $%d", string(*f.Role))
	}
	if f.Active != nil {
		add("p.active = $%d", *f.Active)
	}
	if f.Department != "" {
		add("p.department = $%d", f.Department)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(u.username ILIKE $%d OR u.email ILIKE $%d OR p.department ILIKE $%d)", n, n, n))
	}

	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.is_superuser, u.is_active,
			u.created_at, u.updated_at,
			p.id, p.user_id, p.role, p.phone, p.department, p.hire_date, p.active
		FROM profiles p
		JOIN users u ON u.id = p.user_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY p.hire_date DESC, u.username LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		var role string
		if err := rows.Scan(
			&s.User.ID, &s.User.Username, &s.User.Email, &s.User.FirstName, &s.User.LastName,
			&s.User.IsSuperuser, &s.User.IsActive, &s.User.CreatedAt, &s.User.UpdatedAt,
			&s.Profile.ID, &s.Profile.UserID, &role, &s.Profile.Phone, &s.Profile.Department,
			&s.Profile.HireDate, &s.Profile.Active,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		s.Profile.Role = entity.Role(role)
		list = append(list, &s)
	}
	return list, rows.Err()
}
