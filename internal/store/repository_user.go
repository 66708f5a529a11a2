package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// Rows are reconstituted through [models.ParseRole], mirroring the way
// books round-trip through their category.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// gateway and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableUsers).
		Columns(colUserID, colUsername, colPassword, colEmail, colRole).
		Values(user.UserID, user.Username, user.Password, user.Email, string(user.Role)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Create").Str("user_id", user.UserID).Msg("error inserting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colUserID, colUsername, colPassword, colEmail, colRole).
		From(tableUsers).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAll").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.GetAll").Msg("error scanning user row")
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getOne(ctx, sq.Eq{colUsername: username})
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (models.User, error) {
	return r.getOne(ctx, sq.Eq{colUserID: userID})
}

func (r *userRepository) getOne(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colUserID, colUsername, colPassword, colEmail, colRole).
		From(tableUsers).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getOne").Msg("error scanning user row")
		return models.User{}, err
	}

	return user, nil
}

// Update rewrites username, password, email, and the role label for the given
// userId. The caller is responsible for keeping the role variant fixed; the
// service layer never passes a changed role here.
func (r *userRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(tableUsers).
		Set(colUsername, user.Username).
		Set(colPassword, user.Password).
		Set(colEmail, user.Email).
		Set(colRole, string(user.Role)).
		Where(sq.Eq{colUserID: user.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.Update").Str("user_id", user.UserID).Msg("error updating user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(tableUsers).
		Where(sq.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		rawRole string
	)

	if err := row.Scan(&user.UserID, &user.Username, &user.Password, &user.Email, &rawRole); err != nil {
		return models.User{}, err
	}

	role, err := models.ParseRole(rawRole)
	if err != nil {
		return models.User{}, fmt.Errorf("stored user %s: %w", user.UserID, err)
	}
	user.Role = role

	return user, nil
}
