package auth

import (
	"context"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

var testLeavePolicy = config.LeavePolicyConfig{
	StartingBalanceEmployee: 12,
	StartingBalanceHR:       15,
}

type authTestEnv struct {
	userRepo      user.UserRepository
	structureRepo payroll.SalaryStructureRepository
	jwtService    jwt.Service
	service       auth.AuthService
}

func newAuthTestEnv() authTestEnv {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	structureRepo := memory.NewSalaryStructureRepository(store)
	txm := memory.NewTxManager(store)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return authTestEnv{
		userRepo:      userRepo,
		structureRepo: structureRepo,
		jwtService:    jwtService,
		service:       NewAuthService(txm, userRepo, structureRepo, jwtService, testLeavePolicy),
	}
}

func signupRequest(employeeID, email, role string) auth.SignupRequest {
	return auth.SignupRequest{
		EmployeeID: employeeID,
		Name:       "Test " + employeeID,
		Email:      email,
		Password:   "pass",
		Role:       role,
	}
}

func TestSignupGrantsRoleBasedLeaveBalance(t *testing.T) {
	env := newAuthTestEnv()

	staff, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)
	assert.Equal(t, 12, staff.User.PaidLeaveRemaining)

	admin, err := env.service.Signup(context.Background(), signupRequest("EMP001", "admin@dayflow.com", "HR"))
	require.NoError(t, err)
	assert.Equal(t, 15, admin.User.PaidLeaveRemaining)
}

func TestSignupDefaultsToEmployeeRole(t *testing.T) {
	env := newAuthTestEnv()

	created, err := env.service.Signup(context.Background(), signupRequest("EMP003", "lee@dayflow.com", ""))
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleEmployee), created.User.Role)
	assert.Equal(t, 12, created.User.PaidLeaveRemaining)
}

func TestSignupCreatesEmptySalaryStructure(t *testing.T) {
	env := newAuthTestEnv()

	created, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	structure, err := env.structureRepo.GetByUserID(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, structure.BasicSalary)
	assert.Equal(t, 0.0, structure.NetSalary)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	// Same email
	_, err = env.service.Signup(context.Background(), signupRequest("EMP003", "sarah@dayflow.com", "EMPLOYEE"))
	assert.ErrorIs(t, err, user.ErrUserExists)

	// Same employee ID
	_, err = env.service.Signup(context.Background(), signupRequest("EMP002", "other@dayflow.com", "EMPLOYEE"))
	assert.ErrorIs(t, err, user.ErrUserExists)
}

func TestSignupValidatesRequest(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.service.Signup(context.Background(), auth.SignupRequest{
		EmployeeID: "BAD-1",
		Name:       "Bad",
		Email:      "not-an-email",
		Password:   "x",
	})
	assert.Error(t, err)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	tokens, err := env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "sarah@dayflow.com",
		Password: "pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "sarah@dayflow.com", tokens.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	_, err = env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "sarah@dayflow.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@dayflow.com",
		Password: "pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesTokens(t *testing.T) {
	env := newAuthTestEnv()

	signedUp, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	refreshed, err := env.service.Refresh(context.Background(), signedUp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, signedUp.User.ID, refreshed.User.ID)

	// The consumed refresh token cannot be replayed
	_, err = env.service.Refresh(context.Background(), signedUp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	env := newAuthTestEnv()

	signedUp, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	_, err = env.service.Refresh(context.Background(), signedUp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesTokens(t *testing.T) {
	env := newAuthTestEnv()

	signedUp, err := env.service.Signup(context.Background(), signupRequest("EMP002", "sarah@dayflow.com", "EMPLOYEE"))
	require.NoError(t, err)

	err = env.service.Logout(context.Background(), signedUp.AccessToken, signedUp.RefreshToken)
	require.NoError(t, err)

	assert.True(t, env.jwtService.IsTokenRevoked(signedUp.AccessToken))
	assert.True(t, env.jwtService.IsTokenRevoked(signedUp.RefreshToken))

	_, err = env.service.Refresh(context.Background(), signedUp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
