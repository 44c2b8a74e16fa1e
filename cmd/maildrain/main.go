package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-hrms/pkg/config"
	"github.com/tendant/simple-hrms/pkg/mailqueue"
	"github.com/tendant/simple-hrms/pkg/notification"
)

type Config struct {
	HrmsDbConfig config.DatabaseConfig
	EmailConfig  config.EmailConfig
}

func main() {
	once := flag.Bool("once", false, "drain the queue once and exit")
	interval := flag.Duration("interval", time.Minute, "drain interval")
	flag.Parse()

	godotenv.Load()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

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

	drainer := mailqueue.NewDrainer(mailqueue.NewPostgresQueueRepository(pool), mailer, cfg.EmailConfig.ToSenderIdentity())

	if *once {
		stats, err := drainer.DrainPending(context.Background())
		if err != nil {
			slog.Error("Drain failed", "err", err)
			os.Exit(-1)
		}
		slog.Info("Drain complete", "sent", stats.Sent, "skipped", stats.Skipped, "failed", stats.Failed)
		return
	}

	drainer.Run(context.Background(), *interval)
}
