package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var profileColumns = []string{"id", "bio", "user_id"}

// GetAllProfiles retrieves all profiles ordered by id
func (r *ProfileRepository) GetAllProfiles(ctx context.Context) ([]*models.Profile, error) {
	sql, args, err := psql.Select(profileColumns...).From("profiles").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all profiles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all profiles query")
		return nil, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		p := &models.Profile{}
		if err := rows.Scan(&p.ID, &p.Bio, &p.UserID); err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return profiles, nil
}

// GetProfileByID retrieves a profile by ID
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	sql, args, err := psql.Select(profileColumns...).From("profiles").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.Profile{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Bio, &p.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting profile by ID: %w", err)
	}
	return p, nil
}

// CreateProfile inserts a profile and returns its id
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) (int64, error) {
	sql, args, err := psql.Insert("profiles").
		Columns("bio", "user_id").
		Values(profile.Bio, profile.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create profile query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating profile: %w", mapWriteError(err))
	}
	return id, nil
}

// UpdateProfile overwrites bio and user_id
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	sql, args, err := psql.Update("profiles").
		Set("bio", profile.Bio).
		Set("user_id", profile.UserID).
		Where(squirrel.Eq{"id": profile.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProfile deletes a profile by ID
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("profiles").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
