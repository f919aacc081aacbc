package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hudacentre/fundraiser-rota/internal/config"
	"github.com/hudacentre/fundraiser-rota/pkg/board"
	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
	"github.com/hudacentre/fundraiser-rota/pkg/core/services"
	"github.com/hudacentre/fundraiser-rota/pkg/core/week"
	"github.com/hudacentre/fundraiser-rota/pkg/export/icsexport"
	"github.com/hudacentre/fundraiser-rota/pkg/export/pdfexport"
	"github.com/hudacentre/fundraiser-rota/pkg/guidelines"
	"github.com/hudacentre/fundraiser-rota/pkg/utils/logging"
)

// App holds the application dependencies for one session. The board is
// in-memory only: everything scheduled in a session is gone when the
// process exits, which is why most work happens under `interactive`.
type App struct {
	cfg    *config.Config
	board  *board.Board
	logger *zap.Logger
	ctx    context.Context
}

var (
	env string
	app *App

	// One shared reader for all stdin input. The interactive loop and
	// the confirm prompt would otherwise buffer past each other.
	stdin = bufio.NewReader(os.Stdin)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Fundraiser Rota CLI - Weekly event scheduling and volunteer signups",
		Long: `A CLI tool for planning a week of fundraising events and collecting
volunteer signups against per-role minimums. State lives in memory for
the duration of the session; use 'interactive' to work across multiple
commands, and exportPdf/exportIcs to capture the week before exiting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(showWeekCmd())
	rootCmd.AddCommand(nextWeekCmd())
	rootCmd.AddCommand(prevWeekCmd())
	rootCmd.AddCommand(addEventCmd())
	rootCmd.AddCommand(editEventCmd())
	rootCmd.AddCommand(lockEventCmd())
	rootCmd.AddCommand(unlockEventCmd())
	rootCmd.AddCommand(deleteEventCmd())
	rootCmd.AddCommand(addVolunteerCmd())
	rootCmd.AddCommand(removeVolunteerCmd())
	rootCmd.AddCommand(addRoleCmd())
	rootCmd.AddCommand(roleInfoCmd())
	rootCmd.AddCommand(seedWeekCmd())
	rootCmd.AddCommand(exportPdfCmd())
	rootCmd.AddCommand(exportIcsCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the session board
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting session", zap.String("environment", env))

	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded",
		zap.String("organization", app.cfg.OrganizationName),
		zap.Int("default_roles", len(app.cfg.DefaultRoles)))

	roles := make([]model.RoleDefinition, len(app.cfg.DefaultRoles))
	for i, rc := range app.cfg.DefaultRoles {
		roles[i] = model.RoleDefinition{
			ID:            uuid.New().String(),
			Label:         rc.Label,
			MinVolunteers: rc.MinVolunteers,
			IsDefault:     true,
		}
	}

	app.board = board.New(time.Now, roles, app.cfg.WeeksBack, app.cfg.WeeksAhead)
	app.logger.Info("Board initialized",
		zap.Time("week_start", app.board.WeekStart()),
		zap.Int("roles", len(roles)))

	return nil
}

// confirm asks the user to acknowledge a warning before a destructive
// or unlocking action is applied
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printWeek() {
	overview := services.WeekOverview(app.ctx, app.board.Snapshot(), app.logger, app.board.Now())

	weekEnd := overview.WeekStart.AddDate(0, 0, 6)
	fmt.Printf("\nWeek of %s – %s\n", overview.WeekStart.Format("Mon 2 Jan 2006"), weekEnd.Format("Mon 2 Jan 2006"))
	fmt.Println(strings.Repeat("=", 60))

	for _, day := range overview.Days {
		marker := ""
		if day.IsToday {
			marker = "  <-- today"
		}
		fmt.Printf("\n%s (%s)%s\n", day.Date.Format("Monday 2 Jan"), day.Key, marker)

		if len(day.Events) == 0 {
			fmt.Println("  (no events)")
			continue
		}

		for _, ev := range day.Events {
			lockState := "unlocked"
			if ev.Locked {
				lockState = "locked"
			}
			fmt.Printf("  [%s] %s (%s)\n", ev.ID, ev.Details, lockState)

			for _, ro := range ev.Roles {
				if ro.Coverage.Current == 0 && ro.Coverage.Minimum == 0 {
					continue
				}
				status := "NEEDS MORE"
				if ro.Coverage.IsMet {
					status = "covered"
				}
				fmt.Printf("      %-20s %d/%d  %s\n", ro.Role.Label, ro.Coverage.Current, ro.Coverage.Minimum, status)
				for _, v := range ro.Volunteers {
					fmt.Printf("        - %s  %s  [%s]\n", v.Name, v.Phone, v.ID)
				}
			}
		}
	}
	fmt.Println()
}

// Command definitions

func showWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "showWeek",
		Short: "Show the displayed week's events, rosters and coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printWeek()
			return nil
		},
	}
}

func nextWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nextWeek",
		Short: "Move the week cursor one week forward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, moved := services.NavigateWeek(app.ctx, app.board, app.logger, 1)
			if !moved {
				fmt.Println("Already at the latest navigable week.")
				return nil
			}
			fmt.Printf("Now showing week of %s\n", start.Format("Mon 2 Jan 2006"))
			return nil
		},
	}
}

func prevWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prevWeek",
		Short: "Move the week cursor one week back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, moved := services.NavigateWeek(app.ctx, app.board, app.logger, -1)
			if !moved {
				fmt.Println("Already at the earliest navigable week.")
				return nil
			}
			fmt.Printf("Now showing week of %s\n", start.Format("Mon 2 Jan 2006"))
			return nil
		},
	}
}

func addEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addEvent <date> <details...>",
		Short: "Create an event on a day (created locked)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayKey := args[0]
			details := strings.Join(args[1:], " ")

			ev, err := services.AddEvent(app.ctx, app.board, app.logger, dayKey, details)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created on %s\n\n", dayKey)
			fmt.Printf("Event ID: %s\n", ev.ID)
			fmt.Printf("Details:  %s\n", ev.Details)
			fmt.Printf("Locked:   %t\n\n", ev.Locked)
			return nil
		},
	}
}

func editEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editEvent <date> <event_id> <details...>",
		Short: "Save new details for an unlocked event (saving locks it)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			details := strings.Join(args[2:], " ")

			ev, err := services.UpdateEventDetails(app.ctx, app.board, app.logger, args[0], args[1], details)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Event updated: %s (locked again)\n", ev.Details)
			return nil
		},
	}
}

func lockEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lockEvent <date> <event_id>",
		Short: "Lock an event's details against edits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := services.SetEventLock(app.ctx, app.board, app.logger, args[0], args[1], true); err != nil {
				return err
			}
			fmt.Println("✓ Event locked.")
			return nil
		},
	}
}

func unlockEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlockEvent <date> <event_id>",
		Short: "Unlock an event's details for editing (asks for confirmation)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Unlocking allows the event details to be edited. Continue?") {
				fmt.Println("Unlock cancelled.")
				return nil
			}
			if _, err := services.SetEventLock(app.ctx, app.board, app.logger, args[0], args[1], false); err != nil {
				return err
			}
			fmt.Println("✓ Event unlocked. Remember that saving new details locks it again.")
			return nil
		},
	}
}

func deleteEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEvent <date> <event_id>",
		Short: "Delete an event and all its volunteer signups (asks for confirmation)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("This deletes the event and every signup on it. Continue?") {
				fmt.Println("Deletion cancelled.")
				return nil
			}
			if err := services.DeleteEvent(app.ctx, app.board, app.logger, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("✓ Event deleted.")
			return nil
		},
	}
}

func addVolunteerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addVolunteer <date> <event_id> <role> <name> <phone>",
		Short: "Sign a volunteer up for a role on an event",
		Long: `Sign a volunteer up for a role on an event. Quote arguments that
contain spaces, e.g.:

  addVolunteer 2025-10-10 <event_id> "Volunteers list" "Jane Doe" "(312) 555-0199"`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.AddVolunteer(app.ctx, app.board, app.logger, args[0], args[1], args[2], args[3], args[4])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s signed up for %s\n\n", result.Entry.Name, result.Role.Label)
			fmt.Printf("Entry ID: %s\n", result.Entry.ID)
			fmt.Printf("Coverage: %d/%d", result.Coverage.Current, result.Coverage.Minimum)
			if result.Coverage.IsMet {
				fmt.Printf(" - covered\n\n")
			} else {
				fmt.Printf(" - %d more needed\n\n", result.Coverage.Minimum-result.Coverage.Current)
			}
			return nil
		},
	}
}

func removeVolunteerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "removeVolunteer <date> <event_id> <role> <entry_id>",
		Short: "Remove a volunteer entry from a role's roster",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := services.RemoveVolunteer(app.ctx, app.board, app.logger, args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if removed {
				fmt.Println("✓ Volunteer removed.")
			} else {
				fmt.Println("No entry with that id - nothing to remove.")
			}
			return nil
		},
	}
}

func addRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addRole <label> <min_volunteers>",
		Short: "Add a volunteer role with a minimum headcount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minVolunteers, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("min_volunteers must be a number: %w", err)
			}

			role, err := services.AddRole(app.ctx, app.board, app.logger, args[0], minVolunteers)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Role added: %s (minimum %d)\n", role.Label, role.MinVolunteers)
			return nil
		},
	}
}

func roleInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roleInfo [role]",
		Short: "Show the briefing for a role (or list roles with briefings)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println("\nRoles with briefings:")
				for _, label := range guidelines.Roles() {
					fmt.Printf("  - %s\n", label)
				}
				fmt.Println()
				return nil
			}

			doc, ok := guidelines.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no briefing for role: %s", args[0])
			}

			fmt.Printf("\n%s\n%s\n\n%s\n", doc.Role, strings.Repeat("-", len(doc.Role)), doc.Summary)
			for _, section := range doc.Sections {
				fmt.Printf("\n%s:\n", section.Heading)
				for _, point := range section.Points {
					fmt.Printf("  - %s\n", point)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func seedWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seedWeek",
		Short: "Create this week's events from the configured templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.cfg.EventTemplates) == 0 {
				fmt.Println("No event templates configured - nothing to seed.")
				return nil
			}

			seeded, err := services.SeedWeek(app.ctx, app.board, app.logger, app.cfg.EventTemplates)
			if err != nil {
				return err
			}

			if len(seeded) == 0 {
				fmt.Println("Week already seeded - no new events created.")
				return nil
			}

			fmt.Printf("\n✓ Created %d events:\n", len(seeded))
			for _, s := range seeded {
				fmt.Printf("  %s  %s (%s)\n", s.DayKey, s.Event.Details, s.Template)
			}
			fmt.Println()
			return nil
		},
	}
}

func exportPdfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportPdf [output_path]",
		Short: "Export the displayed week as a PDF via headless Chromium",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			landscape, _ := cmd.Flags().GetBool("landscape")

			outputPath := defaultExportPath("pdf")
			if len(args) > 0 {
				outputPath = args[0]
			}

			overview := services.WeekOverview(app.ctx, app.board.Snapshot(), app.logger, app.board.Now())
			err := pdfexport.Export(app.ctx, overview, pdfexport.Options{
				OutputPath:   outputPath,
				Organization: app.cfg.OrganizationName,
				Landscape:    landscape,
			})
			if err != nil {
				// Export failures never affect board state; surface and move on
				app.logger.Error("PDF export failed", zap.Error(err))
				return fmt.Errorf("PDF export failed: %w", err)
			}

			fmt.Printf("✓ Week exported to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().Bool("landscape", true, "Print in landscape orientation")

	return cmd
}

func exportIcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exportIcs [output_path]",
		Short: "Export the displayed week as an iCalendar file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath := defaultExportPath("ics")
			if len(args) > 0 {
				outputPath = args[0]
			}

			overview := services.WeekOverview(app.ctx, app.board.Snapshot(), app.logger, app.board.Now())
			data, err := icsexport.Export(overview, app.cfg.OrganizationName, app.board.Now())
			if err != nil {
				app.logger.Error("ICS export failed", zap.Error(err))
				return fmt.Errorf("ICS export failed: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write ICS file: %w", err)
			}

			fmt.Printf("✓ Week exported to %s\n", outputPath)
			return nil
		},
	}
}

func defaultExportPath(extension string) string {
	fileName := fmt.Sprintf("week_%s.%s", week.Key(app.board.WeekStart()), extension)
	return filepath.Join(app.cfg.ExportDir, fileName)
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (the board lives until you exit)",
		Long: `Start an interactive session where you can run multiple commands against
the same in-memory board. The session keeps running until you type
'exit' or 'quit'; export the week before leaving if you want to keep it.

Type 'help' to see available commands. Quote arguments containing
spaces, e.g. addVolunteer 2025-10-10 <id> "Volunteers list" "Jane Doe" 3125550199`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Get all sibling commands (excluding interactive itself)
			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			for {
				fmt.Print("> ")

				rawLine, err := stdin.ReadString('\n')
				if err != nil {
					break
				}

				line := strings.TrimSpace(rawLine)
				if line == "" {
					continue
				}

				parts := splitArgs(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("Goodbye! The session board is discarded.")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags before re-execution
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full
				// Execute() flow so PersistentPreRunE doesn't rebuild the
				// board and wipe the session state
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			return nil
		},
	}

	return cmd
}

// splitArgs splits an interactive command line on whitespace while
// keeping double-quoted segments together, so role labels and names
// with spaces survive
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case (r == ' ' || r == '\t') && !inQuotes:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-50s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}
