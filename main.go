package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"roll-point/config"
	"roll-point/db"
	"roll-point/notify"
	"roll-point/server"
	"roll-point/services"
	"roll-point/session"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := applyMigrations(ctx, pool, true); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
		return
	}

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(ctx, pool, false); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fmt.Fprintln(os.Stderr, "redis:", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	notifier, err := notify.New(cfg.Telegram.MessageToken, cfg.Telegram.AdminChatID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "notifier:", err)
		os.Exit(1)
	}
	if notifier != nil {
		fmt.Println("Order notifications enabled.")
	}

	srv := server.New(
		cfg,
		services.NewAccounts(pool),
		services.NewOrders(pool),
		services.NewIntake(pool),
		session.NewRedisStore(redisClient, cfg.Session.TTL),
		notifier,
	)

	fmt.Println("Listening on", cfg.HTTP.Addr)
	if err := srv.Router().Run(cfg.HTTP.Addr); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
