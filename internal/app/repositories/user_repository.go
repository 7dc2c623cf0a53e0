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

// UserRepository handles user database operations
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// selectUsers joins the optional profile so a user is loaded in one round trip.
func (r *UserRepository) selectUsers() squirrel.SelectBuilder {
	return psql.Select("u.id", "u.email", "u.password", "p.id", "p.bio", "p.user_id").
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id")
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var (
		profileID     *int64
		profileBio    *string
		profileUserID *int64
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Password, &profileID, &profileBio, &profileUserID); err != nil {
		return nil, err
	}
	if profileID != nil {
		user.Profile = &models.Profile{ID: *profileID, UserID: *profileUserID}
		if profileBio != nil {
			user.Profile.Bio = *profileBio
		}
	}
	return user, nil
}

// GetAllUsers retrieves all users ordered by id
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.selectUsers().OrderBy("u.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user and its profile
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.selectUsers().Where(squirrel.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}
	return user, nil
}

// CreateUser inserts a user and returns its id
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := psql.Insert("users").
		Columns("email", "password").
		Values(user.Email, user.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating user: %w", mapWriteError(err))
	}
	return id, nil
}

// UpdateUser overwrites email and password
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	sql, args, err := psql.Update("users").
		SetMap(map[string]interface{}{
			"email":    user.Email,
			"password": user.Password,
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating user: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser deletes a user by ID
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", mapDeleteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
