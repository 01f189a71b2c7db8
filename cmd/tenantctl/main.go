package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/crewforge/backoffice/internal/config"
	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/repository"
	"github.com/crewforge/backoffice/internal/roles"
	"github.com/crewforge/backoffice/internal/service"
	"github.com/crewforge/backoffice/internal/tenant"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Shared database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	switchCmd.Flags().StringVar(&switchType, "type", "shared", "Target datastore type (shared or dedicated)")
	switchCmd.Flags().StringVar(&switchURI, "uri", "", "Connection string of the dedicated database")
	switchCmd.Flags().StringVar(&switchDBName, "db-name", "", "Database name on the dedicated server")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(orgsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tenantctl",
	Short: "tenantctl is an operator tool for tenant datastores",
	Long:  `tenantctl seeds org taxonomies, probes tenant databases, and repoints organizations at dedicated datastores.`,
}

// operator is the synthetic identity CLI invocations run as.
var operator = domain.Actor{Role: roles.PlatformAdmin}

func sharedDSN() string {
	if dbConnString != "" {
		return dbConnString
	}
	cfg := config.Load()
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
}

func openShared() (*gorm.DB, *tenant.Resolver, *service.OrganizationService, repository.TenantRepositoriesIface, error) {
	logMode := gormlogger.Silent
	if verbose {
		logMode = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(sharedDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connecting to shared database: %w", err)
	}

	cfg := config.Load()
	orgRepo := repository.NewOrganizationRepository(db)
	eventRepo := repository.NewEventLogRepository(db)
	resolver := tenant.NewResolver(db, orgRepo, cfg.Tenant.MaxPoolSize)
	events := service.NewEventLogService(eventRepo)
	orgs := service.NewOrganizationService(orgRepo, resolver, events, nil, nil)
	return db, resolver, orgs, repository.NewTenantRepositories(resolver), nil
}

var seedCmd = &cobra.Command{
	Use:   "seed-taxonomy [org-id]",
	Short: "Seed the reserved edge_type vocabulary for an organization",
	Long:  `Ensure the organization's edge_type taxonomy exists and all reserved keys are active.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orgID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid organization id: %v", err)
		}

		_, resolver, orgs, tenantRepos, err := openShared()
		if err != nil {
			log.Fatal(err)
		}
		defer resolver.Close()

		events := service.NewEventLogService(nil)
		taxonomies := service.NewTaxonomyService(tenantRepos, orgs, events)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		doc, err := taxonomies.EnsureKeysActive(ctx, operator, orgID, service.NamespaceEdgeType, service.ReservedEdgeTypeKeys)
		if err != nil {
			log.Fatalf("Failed to seed taxonomy: %v", err)
		}

		fmt.Printf("Seeded edge_type taxonomy for %s\n", orgID)
		if verbose {
			for _, v := range doc.Values {
				state := "active"
				if v.ArchivedAt != nil {
					state = "archived"
				}
				fmt.Printf("  - %s (%s, %s)\n", v.Key, v.Label, state)
			}
		}
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe [dsn]",
	Short: "Probe connectivity of a tenant database",
	Long:  `Open and ping a database connection string before an organization is repointed at it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db, err := sql.Open("postgres", args[0])
		if err != nil {
			log.Fatalf("Failed to open connection: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		start := time.Now()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Probe failed: %v", err)
		}

		fmt.Printf("Probe succeeded in %s\n", time.Since(start).Round(time.Millisecond))
		if verbose {
			var version string
			if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err == nil {
				fmt.Printf("  Server: %s\n", version)
			}
		}
	},
}

var (
	switchType   string
	switchURI    string
	switchDBName string
)

var switchCmd = &cobra.Command{
	Use:   "switch-datastore [org-id]",
	Short: "Repoint an organization at a different datastore",
	Long:  `Switch an organization between the shared datastore and a dedicated database. Data migration happens out of band.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orgID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid organization id: %v", err)
		}

		_, resolver, orgs, _, err := openShared()
		if err != nil {
			log.Fatal(err)
		}
		defer resolver.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		input := service.SwitchDatastoreInput{DatastoreType: switchType}
		if switchURI != "" {
			input.DatabaseURI = &switchURI
		}
		if switchDBName != "" {
			input.DatabaseName = &switchDBName
		}

		org, err := orgs.SwitchDatastore(ctx, operator, orgID, input)
		if err != nil {
			log.Fatalf("Failed to switch datastore: %v", err)
		}

		fmt.Printf("Organization %s now routes to the %s datastore\n", org.ID, switchType)
		if verbose && org.LastMigratedAt != nil {
			fmt.Printf("  Recorded at %s\n", org.LastMigratedAt.Format(time.RFC3339))
		}
	},
}

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List organizations and their datastore routing",
	Run: func(cmd *cobra.Command, args []string) {
		_, resolver, orgs, _, err := openShared()
		if err != nil {
			log.Fatal(err)
		}
		defer resolver.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		list, total, err := orgs.List(ctx, operator, 1, 200)
		if err != nil {
			log.Fatalf("Failed to list organizations: %v", err)
		}

		fmt.Printf("%d organizations\n", total)
		for _, org := range list {
			route := "shared"
			if org.UseDedicatedDB {
				route = "dedicated"
			}
			state := ""
			if org.ArchivedAt != nil {
				state = " [archived]"
			}
			if org.LegalHold {
				state += " [legal-hold]"
			}
			fmt.Printf("  %s  %-30s %s%s\n", org.ID, org.Name, route, state)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
