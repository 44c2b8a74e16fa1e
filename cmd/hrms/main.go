package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-hrms/pkg/config"
	"github.com/tendant/simple-hrms/pkg/emailtemplate"
	"github.com/tendant/simple-hrms/pkg/employee"
	"github.com/tendant/simple-hrms/pkg/exit"
	"github.com/tendant/simple-hrms/pkg/grievance"
	"github.com/tendant/simple-hrms/pkg/kpi"
	"github.com/tendant/simple-hrms/pkg/leave"
	"github.com/tendant/simple-hrms/pkg/mailqueue"
	"github.com/tendant/simple-hrms/pkg/notification"
	"github.com/tendant/simple-hrms/pkg/notify"
	"github.com/tendant/simple-hrms/pkg/policy"
	"github.com/tendant/simple-hrms/pkg/ratelimit"
	"github.com/tendant/simple-hrms/pkg/role"
	"github.com/tendant/simple-hrms/pkg/token"
)

// RoleHrAdmin guards template and role administration routes. It is the
// same role whose members the composer copies on resignation events.
const RoleHrAdmin = notify.HRAdminRole

type JobsConfig struct {
	DrainInterval       time.Duration `env:"MAIL_DRAIN_INTERVAL" env-default:"1m"`
	CelebrationInterval time.Duration `env:"CELEBRATION_INTERVAL" env-default:"24h"`
}

type Config struct {
	HrmsDbConfig    config.DatabaseConfig
	AppConfig       app.AppConfig
	JwtConfig       config.JwtConfig
	EmailConfig     config.EmailConfig
	SubjectConfig   config.SubjectConfig
	RateLimitConfig ratelimit.Config
	JobsConfig      JobsConfig
}

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded configuration from .env file")
	}

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	rateLimiter := ratelimit.NewMiddleware(cfg.RateLimitConfig)
	server.R.Use(rateLimiter.Handler)

	dbConfig := cfg.HrmsDbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	mailer, err := notification.NewSMTPMailer(cfg.EmailConfig.ToSMTPConfig())
	if err != nil {
		slog.Error("Failed creating SMTP mailer", "host", cfg.EmailConfig.Host, "port", cfg.EmailConfig.Port, "err", err)
		os.Exit(-1)
	}
	sender := cfg.EmailConfig.ToSenderIdentity()

	templateRepo := emailtemplate.NewPostgresTemplateRepository(pool)
	templateService := emailtemplate.NewTemplateService(templateRepo)

	// Composers park rendered mail in the queue; the drainer is the only
	// path that talks to SMTP.
	queueRepo := mailqueue.NewPostgresQueueRepository(pool)
	queueMailer := mailqueue.NewQueueMailer(queueRepo)

	eventData := notify.NewPostgresEventDataRepository(pool)
	notifyService := notify.NewService(templateService, eventData, queueMailer, sender, cfg.SubjectConfig.ToSubjects())

	employeeRepo := employee.NewPostgresEmployeeRepository(pool)
	employeeService := employee.NewEmployeeService(employeeRepo, notifyService)

	leaveService := leave.NewLeaveService(leave.NewPostgresLeaveRepository(pool), notifyService)
	grievanceService := grievance.NewGrievanceService(grievance.NewPostgresGrievanceRepository(pool), notifyService)
	exitService := exit.NewExitService(exit.NewPostgresResignationRepository(pool), employeeRepo, notifyService)
	policyService := policy.NewPolicyService(policy.NewPostgresPolicyRepository(pool), notifyService)
	kpiService := kpi.NewKPIService(kpi.NewPostgresKPIRepository(pool), notifyService)
	roleService := role.NewRoleService(role.NewPostgresRoleRepository(pool), notifyService)

	tokenGenerator := token.NewJwtTokenGenerator(
		cfg.JwtConfig.Secret,
		cfg.JwtConfig.Issuer,
		cfg.JwtConfig.Audience,
	)
	tokenAuth := tokenGenerator.NewJwtAuth()

	server.R.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(token.AuthUserMiddleware)

		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			authUser, ok := r.Context().Value(token.AuthUserKey).(*token.AuthUser)
			if !ok {
				slog.Error("Failed getting AuthUser", "ok", ok)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			render.JSON(w, r, authUser)
		})

		r.Route("/api/hrms", func(r chi.Router) {
			employee.NewHandler(employeeService).RegisterRoutes(r)
			leave.NewHandler(leaveService).RegisterRoutes(r)
			grievance.NewHandler(grievanceService).RegisterRoutes(r)
			exit.NewHandler(exitService).RegisterRoutes(r)
			policy.NewHandler(policyService).RegisterRoutes(r)
			kpi.NewHandler(kpiService).RegisterRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(token.RequireRole(RoleHrAdmin))
				role.NewHandler(roleService).RegisterRoutes(r)
				emailtemplate.NewHandler(templateService).RegisterRoutes(r)
			})
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drainer := mailqueue.NewDrainer(queueRepo, mailer, sender)
	go drainer.Run(ctx, cfg.JobsConfig.DrainInterval)

	go runCelebrations(ctx, notifyService, cfg.JobsConfig.CelebrationInterval)

	server.Run()
}

// runCelebrations fires the birthday and work anniversary batches once at
// startup and then on a fixed interval.
func runCelebrations(ctx context.Context, svc *notify.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if result, err := svc.NotifyBirthdays(ctx); err != nil {
			slog.Error("Failed sending birthday notifications", "err", err)
		} else {
			slog.Info("Birthday notifications", "sent", result.Sent, "skipped", result.Skipped, "failed", result.Failed)
		}
		if result, err := svc.NotifyWorkAnniversaries(ctx); err != nil {
			slog.Error("Failed sending anniversary notifications", "err", err)
		} else {
			slog.Info("Anniversary notifications", "sent", result.Sent, "skipped", result.Skipped, "failed", result.Failed)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
