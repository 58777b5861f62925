// Command promote grants the admin role to a registered user.
// It is used to bootstrap the first admin, who can then manage roles
// through the API.
//
// Usage:
//
//	promote --username=alice
//	promote --username=alice --role=user
//
// Database settings come from the usual config file and environment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/voyagewise-backend/internal/config"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user to update")
	roleFlag := flag.String("role", domain.UserRoleAdmin.String(), "role to assign: user or admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice [--role=admin]")
		os.Exit(1)
	}

	role := domain.UserRole(*roleFlag)
	if !role.IsValid() {
		log.Fatalf("invalid role %q: must be 'user' or 'admin'", *roleFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := user.New(pool).UpdateRole(ctx, *username, role)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with username %q.\n", *username)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q now has role %q.\n", u.Username, u.Role)
}
