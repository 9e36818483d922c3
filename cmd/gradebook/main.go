// Package main - точка входа консольного приложения Student Grade Analyzer.
//
// Журнал оценок живёт только в памяти одного запуска: меню, ввод имён и
// оценок, отчёты. Вся бизнес-логика - в internal/domain/roster, цикл меню -
// в internal/interface/cli.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alem-hub/alem-classroom/internal/interface/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := setupLogger()

	menu := cli.NewMenu(cli.Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: log,
	})

	// EOF на stdin - нормальное завершение: пользователь закрыл ввод.
	if err := menu.Run(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("menu loop: %w", err)
	}

	return nil
}

func setupLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}

	if os.Getenv("APP_DEBUG") == "true" {
		opts.Level = slog.LevelDebug
	}

	// Логи уходят в stderr, чтобы не смешиваться с текстом меню на stdout.
	log := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(log)

	return log
}
