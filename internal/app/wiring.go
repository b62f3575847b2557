package app

import (
	"fmt"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/config"
	apphttp "teesheet-service/internal/http"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"
	"teesheet-service/internal/repository/postgres"
)

// InitializeService wires up all dependencies and returns a configured Service
func InitializeService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	systemUserRepo := postgres.NewSystemUserRepository(db)
	courseUserRepo := postgres.NewCourseUserRepository(db)
	golfCourseRepo := postgres.NewGolfCourseRepository(db)
	deviceRepo := postgres.NewDeviceRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	checkInRepo := postgres.NewCheckInOrderRepository(db)
	teeTimeRepo := postgres.NewTeeTimeRepository(db)

	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.SystemExpiry, cfg.JWT.CourseExpiry)

	systemResolver := auth.NewSystemResolver(tokenService, systemUserRepo)
	courseResolver := auth.NewCourseResolver(tokenService, courseUserRepo)

	roleChecker := rbac.MustNew(presets.CourseStaff())
	authMiddleware := auth.NewMiddleware(systemResolver, courseResolver, roleChecker)

	server := apphttp.NewServer(&apphttp.ServerDependencies{
		Config:         cfg,
		SystemUserRepo: systemUserRepo,
		CourseUserRepo: courseUserRepo,
		GolfCourseRepo: golfCourseRepo,
		DeviceRepo:     deviceRepo,
		BookingRepo:    bookingRepo,
		CheckInRepo:    checkInRepo,
		TeeTimeRepo:    teeTimeRepo,
		TokenService:   tokenService,
		AuthMiddleware: authMiddleware,
		RoleChecker:    roleChecker,
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}
