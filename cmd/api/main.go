package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cendana-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/cendana-hr/attendance-backend-go/internal/handler/http"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
	"github.com/cendana-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/cendana-hr/attendance-backend-go/internal/repository/postgresql"
	delayService "github.com/cendana-hr/attendance-backend-go/internal/service/delay"
	leaveService "github.com/cendana-hr/attendance-backend-go/internal/service/leave"
	notificationService "github.com/cendana-hr/attendance-backend-go/internal/service/notification"
	punchService "github.com/cendana-hr/attendance-backend-go/internal/service/punch"
	scheduleService "github.com/cendana-hr/attendance-backend-go/internal/service/schedule"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	punchRecordRepo := postgresql.NewPunchRecordRepository(db)
	delayRecordRepo := postgresql.NewDelayRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	notifier := notificationService.NewLogNotifier(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	scheduleResolver := scheduleService.NewResolver(employeeRepo)
	coverageResolver := leaveService.NewCoverageResolver(leaveRequestRepo)
	delaySvc := delayService.NewDelayService(delayRecordRepo, scheduleResolver, coverageResolver, notifier)
	punchSvc := punchService.NewPunchService(punchRecordRepo, employeeRepo, delaySvc)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	delayHandler := appHTTP.NewDelayHandler(delaySvc)

	router := appHTTP.NewRouter(
		JWTService,
		punchHandler,
		delayHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
