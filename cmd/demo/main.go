// Package main runs the identity endpoints against in-memory stores.
// Useful for quick development, demos and learning the API without
// database setup. All data is lost when the server stops; for
// production use cmd/serve with PostgreSQL.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jinzhu/copier"
	"github.com/tendant/chi-demo/app"

	"github.com/procyon-labs/identity-endpoints/pkg/endpoint"
	"github.com/procyon-labs/identity-endpoints/pkg/identity"
)

const jwtSecret = "demo-dev-secret-change-in-production"

type seedUser struct {
	UserName       string
	Email          string
	EmailConfirmed bool
}

var seedUsers = []seedUser{
	{UserName: "admin", Email: "admin@example.com", EmailConfirmed: true},
	{UserName: "demo", Email: "demo@example.com"},
}

var seedRoles = []string{"admin", "user"}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting identity endpoints demo (no database required)")
	slog.Info(strings.Repeat("=", 60))

	users := identity.NewInMemoryUserStore()
	roles := identity.NewInMemoryRoleStore()
	seedInitialData(users, roles)

	tokenAuth := jwtauth.New("HS256", []byte(jwtSecret), nil)

	server := app.NewApp(app.WithPort(4000))
	server.R.Route("/api/idm", func(r chi.Router) {
		endpoint.Attach(r, tokenAuth, func(g chi.Router) {
			endpoint.MountUsers(g, users)
			endpoint.MountRoles(g, roles)
		})
	})

	_, token, err := tokenAuth.Encode(map[string]interface{}{"sub": "demo"})
	if err != nil {
		slog.Error("Failed encoding demo token", "err", err)
		os.Exit(-1)
	}

	slog.Info("Identity endpoints ready")
	slog.Info("  GET    /api/idm/users")
	slog.Info("  POST   /api/idm/users")
	slog.Info("  GET    /api/idm/users/{id}")
	slog.Info("  GET    /api/idm/roles")
	slog.Info("Demo bearer token: " + token)
	slog.Info(strings.Repeat("=", 60))

	server.Run()
}

func seedInitialData(users *identity.InMemoryUserStore, roles *identity.InMemoryRoleStore) {
	slog.Info("Seeding initial data...")

	for _, seed := range seedUsers {
		var user identity.User
		copier.Copy(&user, &seed)
		user = users.SeedUser(user)
		slog.Info("Created user", "id", user.ID, "user_name", user.UserName)
	}

	for _, name := range seedRoles {
		role := roles.SeedRole(identity.Role{Name: name})
		slog.Info("Created role", "id", role.ID, "name", role.Name)
	}
}
