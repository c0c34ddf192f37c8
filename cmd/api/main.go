package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hq/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/dayflow-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hq/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hq/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hq/dayflow-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		fmt.Println("Error preparing database schema:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryStructureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollHistoryRepo := postgresql.NewPayrollHistoryRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(txManager, userRepo, salaryStructureRepo, JWTService, cfg.Leave)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(salaryStructureRepo, payrollHistoryRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	seeder := fixtures.NewSeeder(txManager, userRepo, salaryStructureRepo)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		seeder.Handler(),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
