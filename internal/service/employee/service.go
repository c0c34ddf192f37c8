package employee

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepository user.UserRepository) user.UserService {
	return &EmployeeServiceImpl{
		UserRepository: userRepository,
	}
}

// List implements user.UserService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, found := range users {
		responses = append(responses, user.ToResponse(found))
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// UpdateProfile implements user.UserService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, actorID string, actorRole user.Role, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if actorRole != user.RoleHR && actorID != req.ID {
		return user.UserResponse{}, user.ErrForbidden
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}
