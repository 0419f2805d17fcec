package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			// completions reference employees and toolboxes, delete them first
			for _, table := range []string{"completions", "invitations", "toolboxes", "employees", "users"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		seedUser(db, "admin", "admin@veiligwerk.nl", "Site Admin", "admin", string(hash))
		seedUser(db, "jvries", "j.devries@veiligwerk.nl", "Jan de Vries", "employee", string(hash))

		employees := []struct {
			Name  string
			Email string
		}{
			{"Pieter Bakker", "p.bakker@veiligwerk.nl"},
			{"Sanne Visser", "s.visser@veiligwerk.nl"},
			{"Thomas Mulder", "t.mulder@veiligwerk.nl"},
		}
		for _, e := range employees {
			var exists int
			if err := db.Get(&exists, "SELECT 1 FROM employees WHERE email = $1", e.Email); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO employees (id, name, email, created_at, updated_at) VALUES ($1, $2, $3, now(), now())",
				uuid.NewString(), e.Name, e.Email); err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			fmt.Println("Seeded employee:", e.Email)
		}

		toolboxes := []struct {
			Title    string
			Category string
			Required bool
		}{
			{"Working at Heights", "fall-protection", true},
			{"Hand and Power Tools", "equipment", true},
			{"Hazardous Substances", "chemical-safety", false},
		}
		for _, t := range toolboxes {
			var exists int
			if err := db.Get(&exists, "SELECT 1 FROM toolboxes WHERE title = $1", t.Title); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO toolboxes (id, title, category, required, created_at, updated_at) VALUES ($1, $2, $3, $4, now(), now())",
				uuid.NewString(), t.Title, t.Category, t.Required); err != nil {
				log.Fatalf("failed to insert toolbox %s: %v", t.Title, err)
			}
			fmt.Println("Seeded toolbox:", t.Title)
		}

		fmt.Println("Seeding complete")
	},
}

func seedUser(db *sqlx.DB, username, email, name, role, hash string) {
	var exists int
	if err := db.Get(&exists, "SELECT 1 FROM users WHERE username = $1", username); err == nil {
		fmt.Printf("user %s already exists, skipping\n", username)
		return
	}

	if _, err := db.Exec(
		"INSERT INTO users (id, username, email, name, password_hash, role, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, true, now(), now())",
		uuid.NewString(), username, email, name, hash, role); err != nil {
		log.Fatalf("failed to insert user %s: %v", username, err)
	}
	fmt.Println("Seeded user:", username)
}
