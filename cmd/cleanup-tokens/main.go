// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH or env).
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crimewatch-backend/internal/app"
	authpkg "github.com/heartmarshall/crimewatch-backend/internal/auth"
	"github.com/heartmarshall/crimewatch-backend/internal/config"
	authsvc "github.com/heartmarshall/crimewatch-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, userrepo.New(pool), token.New(pool), postgres.NewTxManager(pool), jwtMgr, cfg.Auth)

	count, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		pool.Close()
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", count)
}
