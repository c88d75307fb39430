package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/portfolio/internal/auth"
	"github.com/james-eo/portfolio/internal/contact"
	"github.com/james-eo/portfolio/internal/education"
	"github.com/james-eo/portfolio/internal/experience"
	"github.com/james-eo/portfolio/internal/generations"
	"github.com/james-eo/portfolio/internal/pdf"
	"github.com/james-eo/portfolio/internal/profile"
	"github.com/james-eo/portfolio/internal/projects"
	"github.com/james-eo/portfolio/internal/resumetemplates"
	"github.com/james-eo/portfolio/internal/shared/config"
	"github.com/james-eo/portfolio/internal/shared/metrics"
	"github.com/james-eo/portfolio/internal/shared/server"
	"github.com/james-eo/portfolio/internal/shared/storage/db"
	"github.com/james-eo/portfolio/internal/shared/storage/object"
	"github.com/james-eo/portfolio/internal/shared/storage/object/local"
	"github.com/james-eo/portfolio/internal/shared/storage/object/s3"
	"github.com/james-eo/portfolio/internal/shared/telemetry"
	"github.com/james-eo/portfolio/internal/skills"
	"github.com/james-eo/portfolio/internal/uploads"
	"github.com/james-eo/portfolio/internal/users"
)

// App holds the assembled application.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Sweeper *generations.Sweeper
}

type repos struct {
	users       users.Repo
	profile     profile.Repo
	skills      skills.Repo
	experience  experience.Repo
	projects    projects.Repo
	education   education.Repo
	contact     contact.Repo
	templates   resumetemplates.Repo
	generations generations.Repo
	uploads     uploads.Repo
}

// Build wires repositories, services and the HTTP router. With no
// DATABASE_URL everything runs on in-memory repositories, which is how
// local development works out of the box.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	return build(ctx, cfg, nil)
}

// BuildWithRenderer is Build with the PDF renderer swapped out.
func BuildWithRenderer(ctx context.Context, cfg config.Config, renderer pdf.Renderer) (*App, error) {
	return build(ctx, cfg, renderer)
}

func build(ctx context.Context, cfg config.Config, renderer pdf.Renderer) (*App, error) {
	var (
		database *sql.DB
		r        repos
		err      error
	)
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.RunMigrations(ctx, database); err != nil {
			database.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		r = pgRepos(database)
	} else {
		telemetry.Info("storage.memory", map[string]any{})
		r = memoryRepos()
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	if renderer == nil {
		renderer = pdf.NewEngine(cfg.ChromePath, cfg.PDFRenderTimeout)
	}

	usersSvc := users.NewService(r.users)
	profileSvc := profile.NewService(r.profile)
	skillsSvc := skills.NewService(r.skills)
	experienceSvc := experience.NewService(r.experience)
	projectsSvc := projects.NewService(r.projects)
	educationSvc := education.NewService(r.education)

	notifier := &contact.SMTPNotifier{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		To:       cfg.ContactEmail,
	}
	contactSvc := contact.NewService(r.contact, notifier)

	templatesSvc := resumetemplates.NewService(r.templates)
	if err := resumetemplates.SeedDefaults(ctx, r.templates); err != nil {
		return nil, fmt.Errorf("seed templates: %w", err)
	}

	uploadsSvc := uploads.NewService(r.uploads, store)

	genSvc := &generations.Service{
		Repo:      r.generations,
		Templates: templatesSvc,
		Aggregator: &generations.Aggregator{
			Profile:    profileSvc,
			Skills:     skillsSvc,
			Experience: experienceSvc,
			Projects:   projectsSvc,
			Education:  r.education,
		},
		Renderer: renderer,
		Store:    store,
		Metrics:  metrics.Default(),
		TTL:      cfg.GenerationTTL,
	}

	registrars := []server.RouteRegistrar{
		users.NewHandler(usersSvc),
		profile.NewHandler(profileSvc),
		skills.NewHandler(skillsSvc),
		experience.NewHandler(experienceSvc),
		projects.NewHandler(projectsSvc),
		education.NewHandler(educationSvc),
		contact.NewHandler(contactSvc),
		resumetemplates.NewHandler(templatesSvc),
		generations.NewHandler(genSvc, uploadsSvc),
		uploads.NewHandler(uploadsSvc),
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		registrars = append(registrars, auth.NewGoogleService(
			cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, usersSvc))
	}

	return &App{
		Config: cfg,
		Router: server.NewRouter(cfg, registrars...),
		DB:     database,
		Sweeper: &generations.Sweeper{
			Repo:     r.generations,
			Store:    store,
			Metrics:  metrics.Default(),
			Interval: cfg.SweepInterval,
		},
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	}
	return local.New(cfg.LocalStoreDir), nil
}

func pgRepos(database *sql.DB) repos {
	return repos{
		users:       &users.PGRepo{DB: database},
		profile:     &profile.PGRepo{DB: database},
		skills:      &skills.PGRepo{DB: database},
		experience:  &experience.PGRepo{DB: database},
		projects:    &projects.PGRepo{DB: database},
		education:   &education.PGRepo{DB: database},
		contact:     &contact.PGRepo{DB: database},
		templates:   &resumetemplates.PGRepo{DB: database},
		generations: &generations.PGRepo{DB: database},
		uploads:     &uploads.PGRepo{DB: database},
	}
}

func memoryRepos() repos {
	return repos{
		users:       users.NewMemoryRepo(),
		profile:     profile.NewMemoryRepo(),
		skills:      skills.NewMemoryRepo(),
		experience:  experience.NewMemoryRepo(),
		projects:    projects.NewMemoryRepo(),
		education:   education.NewMemoryRepo(),
		contact:     contact.NewMemoryRepo(),
		templates:   resumetemplates.NewMemoryRepo(),
		generations: generations.NewMemoryRepo(),
		uploads:     uploads.NewMemoryRepo(),
	}
}
