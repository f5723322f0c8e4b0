package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		pool, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer pool.Close()

		db, err := initGorm(pool)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"chat_messages", "chats", "employee_attendance", "tasks", "projects", "employees", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		adminEmail := "admin@workdesk.local"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&exists); err != nil {
			err := db.Exec(`
				INSERT INTO users (email, name, password_hash, role, job_title, is_active, is_password_temporary, created_at, updated_at)
				VALUES (?, ?, ?, 'business_admin', 'Owner', true, false, now(), now())`,
				adminEmail, "Workdesk Admin", string(hash)).Error
			if err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		} else {
			fmt.Println("admin user already exists")
		}

		employeeEmail := "jane@workdesk.local"
		row = db.Raw("SELECT 1 FROM users WHERE email = ?", employeeEmail).Row()
		if err := row.Scan(&exists); err != nil {
			err := db.Exec(`
				INSERT INTO users (email, name, password_hash, role, job_title, employee_role, is_active, is_password_temporary, created_at, updated_at)
				VALUES (?, ?, ?, 'employee', 'Engineer', 'engineer', true, false, now(), now())`,
				employeeEmail, "Jane Doe", string(hash)).Error
			if err != nil {
				log.Fatalf("failed to insert employee user: %v", err)
			}

			var accountID int64
			if err := db.Raw("SELECT id FROM users WHERE email = ?", employeeEmail).Row().Scan(&accountID); err != nil {
				log.Fatalf("failed to lookup employee account id: %v", err)
			}

			err = db.Exec(`
				INSERT INTO employees (account_id, name, email, role, department, status, join_date, created_by, created_at, updated_at)
				VALUES (?, ?, ?, 'engineer', 'Engineering', 'offline', now(), NULL, now(), now())`,
				accountID, "Jane Doe", employeeEmail).Error
			if err != nil {
				log.Fatalf("failed to insert employee record: %v", err)
			}
			fmt.Println("Seeded employee:", employeeEmail)
		} else {
			fmt.Println("employee already exists")
		}

		fmt.Println("Seeding complete. Default password for seeded accounts:", password)
	},
}
