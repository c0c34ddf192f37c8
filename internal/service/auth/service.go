package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	txm database.TxManager
	user.UserRepository
	payroll.SalaryStructureRepository
	jwt.Service
	leavePolicy config.LeavePolicyConfig
}

func NewAuthService(txm database.TxManager, userRepository user.UserRepository, structureRepository payroll.SalaryStructureRepository, jwtService jwt.Service, leavePolicy config.LeavePolicyConfig) auth.AuthService {
	return &AuthServiceImpl{
		txm:                       txm,
		UserRepository:            userRepository,
		SalaryStructureRepository: structureRepository,
		Service:                   jwtService,
		leavePolicy:               leavePolicy,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// startingBalance returns the paid-leave allotment granted at signup for a
// role.
func (a *AuthServiceImpl) startingBalance(role user.Role) int {
	if role == user.RoleHR {
		return a.leavePolicy.StartingBalanceHR
	}
	return a.leavePolicy.StartingBalanceEmployee
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	var response auth.TokenResponse
	var err error

	response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(u.ID, u.Email, u.Name, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	response.RefreshToken, response.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	response.User = user.ToResponse(u)
	return response, nil
}

// Signup implements auth.AuthService. The user and their empty salary
// structure are created in the same transaction.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	exists, err := a.UserRepository.ExistsByEmailOrEmployeeID(ctx, req.Email, req.EmployeeID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserExists
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	newUser := user.User{
		EmployeeID:         req.EmployeeID,
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       passwordHash,
		Role:               role,
		Department:         req.Department,
		JobTitle:           req.JobTitle,
		PaidLeaveRemaining: a.startingBalance(role),
	}
	if req.Salary != nil {
		newUser.Salary = *req.Salary
	}

	var created user.User
	err = a.txm.WithinTx(ctx, func(txCtx context.Context) error {
		created, err = a.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		structure := payroll.SalaryStructure{UserID: created.ID}
		structure.ComputeNet()
		if _, err := a.SalaryStructureRepository.Create(txCtx, structure); err != nil {
			return fmt.Errorf("failed to create salary structure: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.Service.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Rotate: the old refresh token cannot be replayed
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}
