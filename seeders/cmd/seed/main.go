package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"employee-prep/pkg/config"
	"employee-prep/pkg/database/postgresql"
	"employee-prep/pkg/database/sqlite"
	applogger "employee-prep/pkg/logger"
	"employee-prep/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runEmployees := flag.Bool("employees", false, "Применить миграции и наполнить таблицу сотрудников")
	runPerformance := flag.Bool("performance", false, "Создать демонстрационный файл с оценками (PERFORMANCE_PATH)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runEmployees && !*runPerformance && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -employees")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.OutputPaths)
	defer logger.Sync()

	if *runAll || *runEmployees {
		var db *sql.DB
		dialect := goose.DialectPostgres
		if cfg.Database.Driver == config.DriverSQLite {
			conn, err := sqlite.ConnectDB(ctx, cfg.Database.DSN, logger)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
			db, dialect = conn, goose.DialectSQLite3
		} else {
			pool, err := postgresql.ConnectDB(ctx, cfg.Database.DSN, logger)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
			defer pool.Close()
			db = stdlib.OpenDBFromPool(pool)
		}
		defer db.Close()

		if err := seeders.SeedEmployees(ctx, db, dialect, cfg.Database.EmployeesTable, logger); err != nil {
			log.Fatalf("❌ Ошибка наполнения сотрудников: %v", err)
		}
		log.Println("======================================================")
	}

	if *runAll || *runPerformance {
		if err := seeders.SeedPerformanceFile(ctx, cfg.Pipeline.PerformancePath, logger); err != nil {
			log.Fatalf("❌ Ошибка создания файла с оценками: %v", err)
		}
		log.Println("======================================================")
	}
}
