package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/kamal464/wissen-publication-group-sub000/internal/auth"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/database"
)

// One-shot deployment step: creates the first admin account. Refuses to run
// if an admin already exists, so it is safe to keep in deploy scripts.
func main() {
	var (
		username = flag.String("username", "", "admin username")
		email    = flag.String("email", "", "admin email")
		password = flag.String("password", "", "admin password (8-72 chars)")
	)
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("usage: provision-admin -username <name> -email <addr> -password <pw>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	u, err := auth.ProvisionAdmin(ctx, auth.NewRepo(db), *username, *email, *password)
	if err != nil {
		log.Fatalf("provision failed: %v", err)
	}

	log.Printf("admin account created: %s <%s> (id %s)", u.Username, u.Email, u.ID)
}
