package service

import (
	"context"
	"strings"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

// userService is the concrete implementation of UserService.
// It handles account registration, profile updates, and credential
// verification using a UserRepository for persistence.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// AddUser registers a new account.
//
// The role tag is matched case-insensitively against the known role variants
// and their shorthand forms ("admin", "user", ...).
//
// Returns the created user or:
//   - ErrInvalidDataProvided if userID, username, or password is blank.
//   - models.ErrUnknownRole if the tag matches no variant.
//   - store.ErrUserAlreadyExists if the userID or username is taken.
func (s *userService) AddUser(ctx context.Context, roleTag, userID, username, password, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(username) == "" || password == "" {
		log.Error().Str("user_id", userID).Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := models.NewUser(roleTag, userID, username, password, email)
	if err != nil {
		log.Err(err).Str("role", roleTag).Msg("unknown user role")
		return models.User{}, err
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user creation ended with error")
		return models.User{}, convertStorageError(err)
	}

	log.Info().Msgf("User added: %s (%s)", user.Username, user.UserID)
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users ended with error")
		return nil, convertStorageError(err)
	}
	return users, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("user lookup ended with error")
		return models.User{}, convertStorageError(err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user lookup ended with error")
		return models.User{}, convertStorageError(err)
	}
	return user, nil
}

// UpdateUser rewrites username, password, and email of an existing account.
// The userId identifies the account and the stored role is preserved: role
// changes are not part of a profile update.
func (s *userService) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.UserID) == "" || strings.TrimSpace(user.Username) == "" || user.Password == "" {
		log.Error().Str("user_id", user.UserID).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	current, err := s.userRepository.GetByID(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("user lookup ended with error")
		return convertStorageError(err)
	}
	user.Role = current.Role

	if err := s.userRepository.Update(ctx, user); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("user update ended with error")
		return convertStorageError(err)
	}

	log.Info().Msgf("User updated: %s (%s)", user.Username, user.UserID)
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.Delete(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user deletion ended with error")
		return convertStorageError(err)
	}

	log.Info().Msgf("User deleted: %s", userID)
	return nil
}

// Authenticate verifies the credentials against the stored account.
//
// Returns the matching user record or:
//   - store.ErrUserNotFound if no account has the username.
//   - ErrWrongPassword if the password does not match.
func (s *userService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, convertStorageError(err)
	}

	if user.Password != password {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}
