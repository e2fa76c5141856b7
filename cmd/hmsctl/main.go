// Command hmsctl is the operator tool for the HMS database and object store.
//
//	hmsctl seed-admin -number 50000001 -password ... -first Ada -last Admin -email admin@hms.local
//	hmsctl users
//	hmsctl sweep-orphans
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/blob"
	"github.com/zainaaazz/FullStackWebApplication/pkg/database"
	"github.com/zainaaazz/FullStackWebApplication/pkg/journal"
	applogger "github.com/zainaaazz/FullStackWebApplication/pkg/logger"
	"github.com/zainaaazz/FullStackWebApplication/pkg/transcode"
)

func usage() {
	color.Cyan("hmsctl: HMS operator tool")
	fmt.Fprintln(os.Stderr, "usage: hmsctl [-config file] <seed-admin|users|sweep-orphans> [flags]")
	os.Exit(2)
}

func main() {
	configPath := flag.String("config", os.Getenv("HMS_CONFIG"), "config file")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail("loading config: %v", err)
	}
	// keep the terminal for command output
	cfg.Log.Format = "console"
	if cfg.Log.Level == "info" || cfg.Log.Level == "debug" {
		cfg.Log.Level = "warn"
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fail("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "seed-admin":
		err = seedAdmin(ctx, cfg, logger, args)
	case "users":
		err = listUsers(ctx, cfg, logger)
	case "sweep-orphans":
		err = sweepOrphans(ctx, cfg, logger)
	default:
		usage()
	}
	if err != nil {
		fail("%s: %v", cmd, err)
	}
}

func fail(format string, a ...interface{}) {
	color.Red(format, a...)
	os.Exit(1)
}

func openRepo(cfg *config.Config, logger *zap.Logger) (*repository.Repository, error) {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			return nil, err
		}
	}
	return repository.NewRepository(db), nil
}

// seedAdmin creates the first Admin account; POST /auth/register needs one already
func seedAdmin(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("seed-admin", flag.ExitOnError)
	number := fs.Int("number", 50000001, "UserNumber, must start with 5")
	password := fs.String("password", "", "password (required)")
	first := fs.String("first", "System", "first name")
	last := fs.String("last", "Admin", "last name")
	email := fs.String("email", "admin@hms.local", "email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		return fmt.Errorf("-password is required")
	}
	if role, ok := service.RoleFromUserNumber(*number); !ok || role != model.RoleAdmin {
		return fmt.Errorf("UserNumber %d does not map to the Admin role", *number)
	}

	repo, err := openRepo(cfg, logger)
	if err != nil {
		return err
	}

	u, err := service.NewUserService(repo, logger).Create(ctx, &dto.RegisterRequest{
		UserNumber: *number,
		Password:   *password,
		FirstName:  *first,
		LastName:   *last,
		Email:      *email,
	})
	if err != nil {
		return err
	}

	color.Green("Admin %d created (UserID %d)", u.UserNumber, u.UserID)
	return nil
}

func listUsers(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	repo, err := openRepo(cfg, logger)
	if err != nil {
		return err
	}
	users, err := service.NewUserService(repo, logger).List(ctx)
	if err != nil {
		return err
	}

	color.Yellow("\nUsers (%d)", len(users))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"UserID", "UserNumber", "Name", "Email", "Role", "CourseID"})
	for _, u := range users {
		course := "-"
		if u.CourseID != nil {
			course = strconv.Itoa(*u.CourseID)
		}
		table.Append([]string{
			strconv.Itoa(u.UserID),
			strconv.Itoa(u.UserNumber),
			u.FullName(),
			u.Email,
			u.UserRole,
			course,
		})
	}
	table.Render()
	return nil
}

// sweepOrphans runs the same reconciliation the server does at startup.
// The server must be stopped: the journal file is locked while it runs.
func sweepOrphans(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	repo, err := openRepo(cfg, logger)
	if err != nil {
		return err
	}
	store, err := blob.NewStore(ctx, &cfg.Storage, logger)
	if err != nil {
		return err
	}
	jrnl, err := journal.Open(cfg.Media.JournalPath)
	if err != nil {
		return err
	}
	defer jrnl.Close()

	videos := service.NewVideoService(&cfg.Media, repo, store, transcode.NewFFmpeg(&cfg.Media, logger), jrnl, logger)
	report, err := videos.SweepOrphans(ctx)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Checked", "Linked", "Deleted", "Failed"})
	table.Append([]string{
		strconv.Itoa(report.Checked),
		strconv.Itoa(report.Linked),
		strconv.Itoa(report.Deleted),
		strconv.Itoa(report.Failed),
	})
	table.Render()

	if report.Failed > 0 {
		color.Red("%d orphan(s) could not be deleted; they stay journalled for the next sweep", report.Failed)
		return nil
	}
	color.Green("sweep complete")
	return nil
}
