package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/kelseyhightower/envconfig"

	adaptermiddleware "rbac-admin/internal/adapters/http/middleware"
	adapterlogger "rbac-admin/internal/adapters/logger"
	"rbac-admin/internal/application"
	"rbac-admin/internal/infrastructure/dynamodb"
	"rbac-admin/internal/infrastructure/memory"
	httpiface "rbac-admin/internal/interfaces/http"
	"rbac-admin/internal/ports"
)

type config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	StoreBackend     string        `envconfig:"STORE_BACKEND" default:"memory"`
	SeedFile         string        `envconfig:"SEED_FILE" default:"config/seed.yaml"`
	SimulatedLatency time.Duration `envconfig:"SIMULATED_LATENCY" default:"500ms"`
	TableName        string        `envconfig:"TABLE_NAME"`
	Region           string        `envconfig:"AWS_REGION"`
	APIKey           string        `envconfig:"API_KEY"`
	JWTSecret        string        `envconfig:"JWT_SECRET"`
}

func loadConfig() (config, adaptermiddleware.Mode, error) {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		return config{}, "", err
	}
	authMode, err := adaptermiddleware.ParseAuthMode()
	if err != nil {
		return config{}, "", err
	}
	if cfg.StoreBackend == "dynamodb" && (cfg.TableName == "" || cfg.Region == "") {
		return config{}, "", errors.New("TABLE_NAME and AWS_REGION are required for the dynamodb backend")
	}
	return cfg, authMode, nil
}

func main() {
	logger := adapterlogger.New()
	ctx := context.Background()

	cfg, authMode, err := loadConfig()
	if err != nil {
		logger.Error(ctx, "configuration error", "error", err)
		os.Exit(1)
	}
	xray.Configure(xray.Config{LogLevel: "error"})

	var userRepo ports.UserRepository
	var roleRepo ports.RoleRepository
	switch cfg.StoreBackend {
	case "memory":
		store := memory.NewStore()
		if cfg.SeedFile != "" {
			if err := memory.LoadSeedFile(store, cfg.SeedFile); err != nil {
				logger.Error(ctx, "failed to load seed fixture", "error", err, "path", cfg.SeedFile)
				os.Exit(1)
			}
		}
		userRepo = memory.NewUserRepository(store)
		roleRepo = memory.NewRoleRepository(store)
	case "dynamodb":
		client, err := dynamodb.NewClient(ctx, cfg.Region, cfg.TableName)
		if err != nil {
			logger.Error(ctx, "failed to initialize dynamodb client", "error", err)
			os.Exit(1)
		}
		userRepo = dynamodb.NewUserRepository(client)
		roleRepo = dynamodb.NewRoleRepository(client)
	default:
		logger.Error(ctx, "unknown store backend", "backend", cfg.StoreBackend)
		os.Exit(1)
	}

	ids := application.NewTimeIDSource()
	userSvc := application.NewUserService(userRepo, ids, logger, cfg.SimulatedLatency)
	roleSvc := application.NewRoleService(roleRepo, ids, logger, cfg.SimulatedLatency)

	authMiddleware, err := adaptermiddleware.AuthMiddleware(adaptermiddleware.AuthConfig{
		Mode:      authMode,
		APIKey:    cfg.APIKey,
		JWTSecret: []byte(cfg.JWTSecret),
	})
	if err != nil {
		logger.Error(ctx, "failed to initialize auth middleware", "error", err)
		os.Exit(1)
	}
	mw := httpiface.Middleware{
		Auth:          authMiddleware,
		XRay:          adaptermiddleware.XRayMiddleware("rbac-admin-http"),
		RequestLogger: adaptermiddleware.RequestLogger(logger),
	}
	confirmer := httpiface.HeaderConfirmer{}

	e := httpiface.NewRouter(
		httpiface.NewUsersHandler(userSvc, confirmer),
		httpiface.NewRolesHandler(roleSvc, confirmer),
		httpiface.NewPermissionsHandler(),
		mw,
	)
	logger.Info(ctx, "starting http server", "port", cfg.Port, "backend", cfg.StoreBackend)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
