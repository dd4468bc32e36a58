// Package user orchestrates the user registry operations.
package user

import (
	"context"
	"strings"

	"helpdesk/internal/application/user/dto"
	domainUser "helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type Service struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	logger   logger.Interface
}

func NewService(
	userRepo domainUser.Repository,
	hasher domainUser.PasswordHasher,
	logger logger.Interface,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *Service) CreateUser(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	s.logger.Infow("creating user", "name", request.Name, "area", request.Area)

	if strings.TrimSpace(request.Password) == "" {
		return nil, errors.NewValidationError("password is required")
	}

	// Names are matched case-insensitively, so OPERADOR and operador are
	// the same login.
	existing, err := s.userRepo.GetByName(ctx, request.Name)
	if err != nil && !errors.IsNotFoundError(err) {
		s.logger.Errorw("failed to check user name", "name", request.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("user name already registered")
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := domainUser.NewUser(request.Name, request.Area, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, newUser); err != nil {
		s.logger.Errorw("failed to save user", "name", request.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("user created successfully", "user_id", newUser.ID(), "name", newUser.Name())

	response := dto.ToUserResponse(newUser)
	return &response, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	response := dto.ToUserResponse(found)
	return &response, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.ToUserResponse(u))
	}
	return responses, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	s.logger.Infow("updating user", "user_id", id)

	if id == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if request.Name == nil && request.Area == nil && request.Password == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if request.Name != nil && domainUser.NormalizeName(*request.Name) != found.NormalizedName() {
		existing, err := s.userRepo.GetByName(ctx, *request.Name)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if existing != nil && existing.ID() != id {
			return nil, errors.NewConflictError("user name already registered")
		}
		if err := found.Rename(*request.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if request.Area != nil {
		if err := found.ChangeArea(*request.Area); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if request.Password != nil {
		if strings.TrimSpace(*request.Password) == "" {
			return nil, errors.NewValidationError("password cannot be empty")
		}
		hash, err := s.hasher.Hash(*request.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := found.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.userRepo.Update(ctx, found); err != nil {
		s.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	response := dto.ToUserResponse(found)
	return &response, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	s.logger.Infow("deleting user", "user_id", id)

	if id == 0 {
		return errors.NewValidationError("user ID is required")
	}

	rows, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		return err
	}
	if rows == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

// VerifyCredentials checks a name/password pair against the registry. The
// name comparison is case-insensitive.
func (s *Service) VerifyCredentials(ctx context.Context, name, password string) (*dto.UserResponse, error) {
	found, err := s.userRepo.GetByName(ctx, name)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if found == nil || !s.hasher.Verify(found.PasswordHash(), password) {
		return nil, errors.NewValidationError("invalid credentials")
	}

	response := dto.ToUserResponse(found)
	return &response, nil
}
