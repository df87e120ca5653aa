package userinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/iam/auth"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresUserRepository implements user.Repository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type userModel struct {
	ID               string          `db:"id"`
	ExternalUID      string          `db:"external_uid"`
	Email            string          `db:"email"`
	DisplayName      string          `db:"display_name"`
	Role             string          `db:"role"`
	Status           string          `db:"status"`
	PasswordHash     *string         `db:"password_hash"`
	CandidateProfile json.RawMessage `db:"candidate_profile"`
	HRProfile        json.RawMessage `db:"hr_profile"`
	CompanyProfile   json.RawMessage `db:"company_profile"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (m *userModel) toEntity() (*user.User, error) {
	u := &user.User{
		ID:           kernel.UserID(m.ID),
		ExternalUID:  kernel.ExternalUID(m.ExternalUID),
		Email:        kernel.Email(m.Email),
		DisplayName:  kernel.DisplayName(m.DisplayName),
		Role:         auth.Role(m.Role),
		Status:       user.UserStatus(m.Status),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.CandidateProfile) > 0 {
		var p user.CandidateProfile
		if err := json.Unmarshal(m.CandidateProfile, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate profile: %w", err)
		}
		u.CandidateProfile = &p
	}
	if len(m.HRProfile) > 0 {
		var p user.HRProfile
		if err := json.Unmarshal(m.HRProfile, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hr profile: %w", err)
		}
		u.HRProfile = &p
	}
	if len(m.CompanyProfile) > 0 {
		var p user.CompanyProfile
		if err := json.Unmarshal(m.CompanyProfile, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal company profile: %w", err)
		}
		u.CompanyProfile = &p
	}

	return u, nil
}

func fromEntity(u *user.User) (*userModel, error) {
	m := &userModel{
		ID:           string(u.ID),
		ExternalUID:  string(u.ExternalUID),
		Email:        string(u.Email),
		DisplayName:  string(u.DisplayName),
		Role:         string(u.Role),
		Status:       string(u.Status),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	var err error
	if u.CandidateProfile != nil {
		if m.CandidateProfile, err = json.Marshal(u.CandidateProfile); err != nil {
			return nil, fmt.Errorf("failed to marshal candidate profile: %w", err)
		}
	}
	if u.HRProfile != nil {
		if m.HRProfile, err = json.Marshal(u.HRProfile); err != nil {
			return nil, fmt.Errorf("failed to marshal hr profile: %w", err)
		}
	}
	if u.CompanyProfile != nil {
		if m.CompanyProfile, err = json.Marshal(u.CompanyProfile); err != nil {
			return nil, fmt.Errorf("failed to marshal company profile: %w", err)
		}
	}

	return m, nil
}

const userColumns = `
	id, external_uid, email, display_name, role, status, password_hash,
	candidate_profile, hr_profile, company_profile, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := fromEntity(u)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (
			id, external_uid, email, display_name, role, status, password_hash,
			candidate_profile, hr_profile, company_profile, created_at, updated_at
		) VALUES (
			:id, :external_uid, :email, :display_name, :role, :status, :password_hash,
			:candidate_profile, :hr_profile, :company_profile, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return user.ErrUserAlreadyExists()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Update updates an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, id kernel.UserID, u *user.User) error {
	model, err := fromEntity(u)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET
			email = :email,
			display_name = :display_name,
			status = :status,
			password_hash = :password_hash,
			candidate_profile = :candidate_profile,
			hr_profile = :hr_profile,
			company_profile = :company_profile,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}

	return nil
}

// GetByID retrieves a user by local ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.toEntity()
}

// GetByExternalUID retrieves a user by the identity provider's uid
func (r *PostgresUserRepository) GetByExternalUID(ctx context.Context, uid kernel.ExternalUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_uid = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(uid))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user by uid: %w", err)
	}

	return model.toEntity()
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toEntity()
}

// UpdateStatus flips the moderation status and stamps updated_at
func (r *PostgresUserRepository) UpdateStatus(ctx context.Context, id kernel.UserID, status user.UserStatus) error {
	query := `UPDATE users SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, string(status), time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrUserNotFound()
	}

	return nil
}

// ListByRole retrieves accounts for a role, optionally filtered by status
func (r *PostgresUserRepository) ListByRole(ctx context.Context, role auth.Role, status *user.UserStatus, pagination kernel.PaginationOptions) (*kernel.Paginated[user.User], error) {
	where := `WHERE role = $1`
	args := []interface{}{string(role)}
	if status != nil {
		where += ` AND status = $2`
		args = append(args, string(*status))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM users ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+userColumns+`
		FROM users
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, pagination.Offset())

	var models []userModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	entities := make([]user.User, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// CountByRole computes global total/active/inactive counts for a role
func (r *PostgresUserRepository) CountByRole(ctx context.Context, role auth.Role) (user.RoleStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'active') AS active,
			COUNT(*) FILTER (WHERE status = 'inactive') AS inactive
		FROM users
		WHERE role = $1
	`

	var stats user.RoleStats
	row := r.db.QueryRowxContext(ctx, query, string(role))
	if err := row.Scan(&stats.Total, &stats.Active, &stats.Inactive); err != nil {
		return user.RoleStats{}, fmt.Errorf("failed to count users by role: %w", err)
	}

	return stats, nil
}
