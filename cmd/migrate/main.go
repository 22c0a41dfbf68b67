package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/infrastructure/database/postgres"
	"github.com/Karasowl/laralis-sub007/infrastructure/migration"
	"github.com/Karasowl/laralis-sub007/internal/config"
)

func main() {
	down := flag.Bool("down", false, "revierte la última migración en lugar de aplicar las pendientes")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}
	defer conn.Close()

	if *down {
		if err := migration.Down(ctx, conn.DB); err != nil {
			logrus.WithError(err).Fatal("Error al revertir la migración")
		}
		logrus.Info("Migración revertida con éxito")
		return
	}

	if err := migration.Up(ctx, conn.DB); err != nil {
		logrus.WithError(err).Fatal("Error al aplicar migraciones")
	}
	logrus.Info("Migraciones aplicadas con éxito")
}
