package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/procyon-labs/identity-endpoints/pkg/endpoint"
	"github.com/procyon-labs/identity-endpoints/pkg/identity/pgstore"
)

type IdmDbConfig struct {
	Host     string `env:"IDM_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"IDM_PG_PORT" env-default:"5432"`
	Database string `env:"IDM_PG_DATABASE" env-default:"identity_db"`
	User     string `env:"IDM_PG_USER" env-default:"idm"`
	Password string `env:"IDM_PG_PASSWORD" env-default:"pwd"`
}

func (d IdmDbConfig) toDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

type JwtConfig struct {
	JwtSecret string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
}

type Config struct {
	IdmDbConfig IdmDbConfig
	AppConfig   app.AppConfig
	JwtConfig   JwtConfig
}

func main() {
	config := Config{}
	cleanenv.ReadEnv(&config)

	server := app.DefaultApp()

	app.RegisterHealthzRoutes(server.R)

	dbConfig := config.IdmDbConfig.toDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}

	users := pgstore.NewUserStore(pool)
	roles := pgstore.NewRoleStore(pool)

	tokenAuth := jwtauth.New("HS256", []byte(config.JwtConfig.JwtSecret), nil)

	server.R.Route("/api/idm", func(r chi.Router) {
		endpoint.Attach(r, tokenAuth, func(g chi.Router) {
			endpoint.MountUsers(g, users)
			endpoint.MountRoles(g, roles)
		})
	})

	server.Run()
}
