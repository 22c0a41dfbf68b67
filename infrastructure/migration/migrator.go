package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var migrationsFS embed.FS

const dialect = "postgres"

// Up aplica las migraciones pendientes embebidas en el binario.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("no fue posible fijar el dialecto: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("no fue posible aplicar migraciones: %w", err)
	}

	return nil
}

// Down revierte la última migración aplicada.
func Down(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("no fue posible fijar el dialecto: %w", err)
	}

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("no fue posible revertir la migración: %w", err)
	}

	return nil
}
