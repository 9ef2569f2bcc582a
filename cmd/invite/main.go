// Command invite seeds an invitation with a shareable code and prints
// the link to hand out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hrgovic/wedding-site/internal/config"
	"github.com/hrgovic/wedding-site/internal/env"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/commands"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	firstName := flag.String("first", "", "primary guest first name")
	lastName := flag.String("last", "", "primary guest last name")
	email := flag.String("email", "", "invitation email (optional)")
	host := flag.String("host", "http://localhost:8080", "site base URL for the printed link")
	envFile := flag.String("env", "", "optional env file to load")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatal(err)
		}
	}

	command := commands.CreateInvitationCommand{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
	}
	if err := command.Validate(); err != nil {
		log.Fatal(err)
	}

	// Connect pings, so a bad DATABASE_URL fails here instead of on the
	// insert.
	db, err := sqlx.Connect("postgres", env.MustGetString(config.DatabaseUrlEnv))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()

	handler := commands.NewCreateInvitationCommandHandler(db.DB)
	response, err := handler.Handle(context.Background(), command)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("invitation %d created\n", response.InvitationID)
	fmt.Printf("code: %s\n", response.Code)
	fmt.Printf("link: %s/rsvp/%s\n", strings.TrimRight(*host, "/"), response.Code)
}
