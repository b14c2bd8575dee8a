// cmd/seed/main.go
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/model"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(createDBCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedPermissionsCmd)
	rootCmd.AddCommand(backfillRolesCmd)
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed manages the hireloop database schema and seed data",
	Long:  `Seed creates the database, migrates the schema, and seeds the permission catalog and default company roles.`,
}

var createDBCmd = &cobra.Command{
	Use:   "create-db",
	Short: "Create the application database if it does not exist",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		// Connect against the maintenance database to bootstrap our own.
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.SSLMode,
		)

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		var exists bool
		err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Database.Name).Scan(&exists)
		if err != nil {
			log.Fatalf("Failed to check database existence: %v", err)
		}

		if exists {
			fmt.Printf("Database %q already exists\n", cfg.Database.Name)
			return
		}

		// CREATE DATABASE cannot be parameterized; the name comes from
		// our own configuration, not user input.
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", cfg.Database.Name)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}

		fmt.Printf("Database %q created\n", cfg.Database.Name)
	},
}

// enumTypes are the Postgres enum types backing the models' typed columns.
// AutoMigrate references them but does not create them.
var enumTypes = []struct {
	name   string
	values []string
}{
	{"account_type", []string{string(model.AccountPersonal), string(model.AccountCompany)}},
	{"user_status", []string{string(model.StatusPending), string(model.StatusActive), string(model.StatusLocked)}},
	{"invitation_status", []string{
		string(model.InvitationPending), string(model.InvitationAccepted),
		string(model.InvitationRejected), string(model.InvitationPreAccepted),
	}},
	{"employment_type", []string{
		string(model.EmploymentFullTime), string(model.EmploymentPartTime),
		string(model.EmploymentContract), string(model.EmploymentInternship),
	}},
	{"job_post_status", []string{string(model.JobPostDraft), string(model.JobPostPublished), string(model.JobPostClosed)}},
}

// createEnumSQL renders an idempotent CREATE TYPE statement; re-running the
// migration on an existing database swallows duplicate_object.
func createEnumSQL(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf(
		"DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$",
		name, strings.Join(quoted, ", "),
	)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema to the database",
	Long:  `Auto-migrate all application tables and required extensions.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		// Handles are stored case-insensitively; gen_random_uuid needs pgcrypto
		// on Postgres < 13.
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			log.Fatalf("Failed to create citext extension: %v", err)
		}
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
			log.Fatalf("Failed to create pgcrypto extension: %v", err)
		}

		for _, enum := range enumTypes {
			if err := db.Exec(createEnumSQL(enum.name, enum.values)).Error; err != nil {
				log.Fatalf("Failed to create %s type: %v", enum.name, err)
			}
		}

		err := db.AutoMigrate(
			&model.User{},
			&model.Company{},
			&model.Role{},
			&model.Permission{},
			&model.RolePermission{},
			&model.CompanyMember{},
			&model.Invitation{},
			&model.JobPost{},
			&model.AuthzAuditLog{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedPermissionsCmd = &cobra.Command{
	Use:   "seed-permissions",
	Short: "Seed the permission catalog",
	Long:  `Insert the permission catalog, updating categories and descriptions of existing entries.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		catalog := model.PermissionCatalog()
		for _, perm := range catalog {
			var existing model.Permission
			err := db.Where("name = ?", perm.Name).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := db.Create(&perm).Error; err != nil {
					log.Fatalf("Failed to create permission %s: %v", perm.Name, err)
				}
				if verbose {
					fmt.Printf("  created %s\n", perm.Name)
				}
			case err != nil:
				log.Fatalf("Failed to look up permission %s: %v", perm.Name, err)
			default:
				existing.Category = perm.Category
				existing.Description = perm.Description
				if err := db.Save(&existing).Error; err != nil {
					log.Fatalf("Failed to update permission %s: %v", perm.Name, err)
				}
				if verbose {
					fmt.Printf("  updated %s\n", perm.Name)
				}
			}
		}

		fmt.Printf("Seeded %d permissions\n", len(catalog))
	},
}

var backfillRolesCmd = &cobra.Command{
	Use:   "backfill-roles",
	Short: "Create missing default roles for existing companies",
	Long:  `Ensure every company carries the full default role set with its grants. Existing roles are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		var companies []model.Company
		if err := db.Find(&companies).Error; err != nil {
			log.Fatalf("Failed to list companies: %v", err)
		}

		created := 0
		for _, company := range companies {
			for _, seed := range model.DefaultRoles() {
				var count int64
				err := db.Model(&model.Role{}).
					Where("company_id = ? AND name = ?", company.ID, seed.Name).
					Count(&count).Error
				if err != nil {
					log.Fatalf("Failed to check role %s for company %s: %v", seed.Name, company.ID, err)
				}
				if count > 0 {
					continue
				}

				err = db.Transaction(func(tx *gorm.DB) error {
					role := model.Role{
						CompanyID: company.ID,
						Name:      seed.Name,
						Color:     seed.Color,
						Position:  seed.Position,
						IsDefault: true,
					}
					if err := tx.Create(&role).Error; err != nil {
						return err
					}
					for _, perm := range seed.Permissions {
						grant := model.RolePermission{
							RoleID:     role.ID,
							Permission: perm,
							Enabled:    true,
						}
						if err := tx.Create(&grant).Error; err != nil {
							return err
						}
					}
					return nil
				})
				if err != nil {
					log.Fatalf("Failed to backfill role %s for company %s: %v", seed.Name, company.ID, err)
				}

				created++
				if verbose {
					fmt.Printf("  %s: created %s\n", company.Handle, seed.Name)
				}
			}
		}

		fmt.Printf("Backfilled %d roles across %d companies\n", created, len(companies))
	},
}

func openGorm() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
