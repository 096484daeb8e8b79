package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/absencetrack/attendance-backend-go/internal/config"
	"github.com/absencetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/absencetrack/attendance-backend-go/internal/domain/history"
	appHTTP "github.com/absencetrack/attendance-backend-go/internal/handler/http"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/database"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/absencetrack/attendance-backend-go/internal/pkg/seed"
	"github.com/absencetrack/attendance-backend-go/internal/repository/localjson"
	"github.com/absencetrack/attendance-backend-go/internal/repository/memory"
	"github.com/absencetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/absencetrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/absencetrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/absencetrack/attendance-backend-go/internal/service/employee"
	historyService "github.com/absencetrack/attendance-backend-go/internal/service/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// The seed document carries the credential list and the employee
	// directory. A missing or broken seed degrades to an empty system
	// instead of refusing to start.
	seedDoc, err := seed.Load(cfg.Storage.SeedPath)
	if err != nil {
		slog.Warn("Seed document unavailable, starting empty", "path", cfg.Storage.SeedPath, "error", err)
		seedDoc = seed.Document{}
	}

	directory, err := seedDoc.Directory()
	if err != nil {
		slog.Warn("Seed directory invalid, starting empty", "error", err)
		directory = nil
	}

	userRepo := memory.NewUserRepository(seedDoc.Credentials())
	employeeRepo := memory.NewEmployeeRepository(directory)

	var (
		txManager      database.TxManager
		attendanceRepo attendance.AttendanceRepository
		historyRepo    history.HistoryRepository
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		txManager = store
		attendanceRepo = memory.NewAttendanceRepository(store)
		historyRepo = memory.NewHistoryRepository(store)

	case config.DriverFile:
		store, err := localjson.Open(cfg.Storage.DataPath)
		if err != nil {
			fmt.Println("Error opening data file:", err)
			return
		}
		txManager = store
		attendanceRepo = localjson.NewAttendanceRepository(store)
		historyRepo = localjson.NewHistoryRepository(store)

	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		txManager = postgresql.NewTxManager(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		historyRepo = postgresql.NewHistoryRepository(db)
	}

	if err := importSeedRecords(seedDoc, txManager, attendanceRepo); err != nil {
		slog.Warn("Seed attendance not imported", "error", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, historyRepo, employeeRepo)
	historySvc := historyService.NewHistoryService(historyRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	historyHandler := appHTTP.NewHistoryHandler(historySvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		historyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// importSeedRecords copies the seed attendance into an empty ledger. A
// ledger that already holds records is never touched, so restarts do not
// duplicate or resurrect data. Imported records get no history entries:
// only user actions belong in the modification history.
func importSeedRecords(doc seed.Document, tx database.TxManager, repo attendance.AttendanceRepository) error {
	if len(doc.Attendance) == 0 {
		return nil
	}

	records, err := doc.Records()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := repo.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}
		for _, rec := range records {
			if err := repo.Upsert(ctx, rec); err != nil {
				return err
			}
		}
		slog.Info("Imported seed attendance", "records", len(records))
		return nil
	})
}
