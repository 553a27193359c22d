package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hr-records/internal/adapters/repository/memory"
	pgrepo "hr-records/internal/adapters/repository/postgres"
	"hr-records/internal/adapters/repository/sqlite"
	"hr-records/internal/core/employee"
	"hr-records/internal/core/history"
	"hr-records/internal/core/report"
	"hr-records/internal/platform/auth"
	"hr-records/internal/platform/config"
	pgdb "hr-records/internal/platform/db/postgres"
	"hr-records/internal/platform/i18n"
)

const dateLayout = "2006-01-02"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a command needs. The caller must defer app.Close().
type app struct {
	cfg     *config.Config
	svc     employee.UseCase
	auth    *auth.Manager
	i18n    *i18n.Translator
	closeFn func() error
}

func (a *app) Close() {
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			fmt.Fprintf(os.Stderr, "close store: %v\n", err)
		}
	}
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Resolve("")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{
		cfg:  cfg,
		auth: auth.NewManager(cfg.Session.Path),
		i18n: i18n.New(cfg.Language),
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		var opts []memory.Option
		if cfg.Storage.Seed {
			opts = append(opts, memory.WithSeed(memory.DefaultSeed()))
		}
		store := memory.NewStore(opts...)
		a.svc = employee.NewService(store.EmployeeRepository(), store.HistoryRepository(), nil, store)

	case config.DriverSQLite:
		store, err := sqlite.NewStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		if cfg.Storage.Seed && store.Empty() {
			if err := store.Seed(memory.DefaultSeed()); err != nil {
				store.Close()
				return nil, fmt.Errorf("seeding sqlite store: %w", err)
			}
		}
		a.svc = employee.NewService(store.EmployeeRepository(), store.HistoryRepository(), nil, store)
		a.closeFn = store.Close

	case config.DriverPostgres:
		pool, err := pgdb.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("initializing database pool: %w", err)
		}
		tx := pgdb.NewTransactionManager(pool)
		a.svc = employee.NewService(pgrepo.NewEmployeeRepository(pool), pgrepo.NewHistoryRepository(pool), nil, tx)
		a.closeFn = func() error {
			pool.Close()
			return nil
		}

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return a, nil
}

// currentActor returns the display name of the logged-in user. Mutating
// commands require a session so history entries always carry an author.
func (a *app) currentActor() (string, error) {
	session, err := a.auth.Current()
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return "", fmt.Errorf("not logged in, run `hrctl login` first")
		}
		return "", err
	}
	return session.DisplayName, nil
}

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "Employee records management",
}

// login / logout

var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Log in and store a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		session, err := a.auth.Login(args[0], password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return fmt.Errorf("%s", a.i18n.Translate("Invalid username or password", nil))
			}
			return err
		}

		fmt.Println(a.i18n.Translate("Logged in as {name}", i18n.Params{"name": session.DisplayName}))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		session, err := a.auth.Current()
		if err != nil {
			if errors.Is(err, auth.ErrNotLoggedIn) {
				fmt.Println("Not logged in.")
				return nil
			}
			return err
		}
		fmt.Printf("%s (%s)\n", session.DisplayName, session.Role)
		return nil
	},
}

// list / show / search

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		department, _ := cmd.Flags().GetString("department")

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		var employees []*employee.Employee
		if search != "" {
			employees, err = a.svc.SearchEmployees(cmd.Context(), search)
		} else {
			employees, err = a.svc.ListEmployees(cmd.Context())
		}
		if err != nil {
			return err
		}

		today := time.Now()
		shown := 0
		for _, emp := range employees {
			if status != "" && !strings.EqualFold(status, string(emp.Status)) {
				continue
			}
			if department != "" && department != "All" && department != emp.Department {
				continue
			}
			badge := ""
			if report.OnProbation(emp, today) {
				badge = "  [" + a.i18n.Translate("On Probation", nil) + "]"
			}
			fmt.Printf("#%-3d %-8s %-22s %-16s %-24s %s%s\n",
				emp.ID, emp.EmployeeNumber, emp.Name, emp.Department, emp.Position, emp.Status, badge)
			shown++
		}
		if shown == 0 {
			fmt.Println(a.i18n.Translate("No employees found", nil))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show employee details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		emp, err := a.svc.GetEmployee(cmd.Context(), id)
		if err != nil {
			return describeError(a, err)
		}

		printEmployee(a, emp)
		return nil
	},
}

// add / update / toggle

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		actor, err := a.currentActor()
		if err != nil {
			return err
		}

		in := employee.CreateEmployeeInput{Name: args[0], Actor: actor}
		in.Email, _ = cmd.Flags().GetString("email")
		in.Phone, _ = cmd.Flags().GetString("phone")
		in.Position, _ = cmd.Flags().GetString("position")
		in.Department, _ = cmd.Flags().GetString("department")
		in.Salary, _ = cmd.Flags().GetInt64("salary")
		in.Location, _ = cmd.Flags().GetString("location")
		in.Address, _ = cmd.Flags().GetString("address")
		in.City, _ = cmd.Flags().GetString("city")
		in.Country, _ = cmd.Flags().GetString("country")
		in.Manager, _ = cmd.Flags().GetString("manager")
		in.WorkSchedule, _ = cmd.Flags().GetString("schedule")
		in.Bio, _ = cmd.Flags().GetString("bio")
		in.Skills, _ = cmd.Flags().GetStringSlice("skills")

		if raw, _ := cmd.Flags().GetString("type"); raw != "" {
			t := employee.EmploymentType(raw)
			in.EmploymentType = &t
		}
		if raw, _ := cmd.Flags().GetString("start"); raw != "" {
			start, err := time.Parse(dateLayout, raw)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			in.StartDate = start
		}
		if months, _ := cmd.Flags().GetInt("probation-months"); months > 0 {
			start := in.StartDate
			if start.IsZero() {
				start = time.Now()
			}
			in.Probation = employee.ProbationPeriod{
				OnProbation:    true,
				StartDate:      start,
				EndDate:        report.ProbationEndDate(start, months),
				DurationMonths: months,
			}
		}

		emp, err := a.svc.CreateEmployee(cmd.Context(), in)
		if err != nil {
			return describeError(a, err)
		}

		fmt.Printf("Created #%d %s (%s)\n", emp.ID, emp.Name, emp.EmployeeNumber)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update employee fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		actor, err := a.currentActor()
		if err != nil {
			return err
		}

		in := employee.UpdateEmployeeInput{ID: id, Actor: actor}
		setString := func(flag string, dst **string) {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				*dst = &v
			}
		}
		setString("name", &in.Name)
		setString("email", &in.Email)
		setString("phone", &in.Phone)
		setString("position", &in.Position)
		setString("department", &in.Department)
		setString("location", &in.Location)
		setString("address", &in.Address)
		setString("city", &in.City)
		setString("country", &in.Country)
		setString("manager", &in.Manager)
		setString("schedule", &in.WorkSchedule)
		setString("bio", &in.Bio)

		if cmd.Flags().Changed("salary") {
			v, _ := cmd.Flags().GetInt64("salary")
			in.Salary = &v
		}
		if cmd.Flags().Changed("type") {
			raw, _ := cmd.Flags().GetString("type")
			t := employee.EmploymentType(raw)
			in.EmploymentType = &t
		}
		if cmd.Flags().Changed("status") {
			raw, _ := cmd.Flags().GetString("status")
			st := employee.Status(raw)
			in.Status = &st
		}
		if cmd.Flags().Changed("start") {
			raw, _ := cmd.Flags().GetString("start")
			start, err := time.Parse(dateLayout, raw)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			in.StartDate = &start
		}
		if cmd.Flags().Changed("skills") {
			in.Skills, _ = cmd.Flags().GetStringSlice("skills")
			in.SkillsSet = true
		}
		if cmd.Flags().Changed("probation-months") {
			months, _ := cmd.Flags().GetInt("probation-months")
			probation := employee.ProbationPeriod{}
			if months > 0 {
				start := time.Now()
				probation = employee.ProbationPeriod{
					OnProbation:    true,
					StartDate:      start,
					EndDate:        report.ProbationEndDate(start, months),
					DurationMonths: months,
				}
			}
			in.Probation = &probation
		}

		emp, err := a.svc.UpdateEmployee(cmd.Context(), in)
		if err != nil {
			return describeError(a, err)
		}

		fmt.Printf("Updated #%d %s\n", emp.ID, emp.Name)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle ID",
	Short: "Toggle employee status between Active and Inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		actor, err := a.currentActor()
		if err != nil {
			return err
		}

		emp, err := a.svc.ToggleEmployeeStatus(cmd.Context(), employee.ToggleStatusInput{ID: id, Actor: actor})
		if err != nil {
			return describeError(a, err)
		}

		fmt.Printf("#%d %s is now %s\n", emp.ID, emp.Name, emp.Status)
		return nil
	},
}

// docs subcommands

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage employee documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list EMPLOYEE_ID",
	Short: "List documents for an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		emp, err := a.svc.GetEmployee(cmd.Context(), id)
		if err != nil {
			return describeError(a, err)
		}

		if len(emp.Documents) == 0 {
			fmt.Println("No documents.")
			return nil
		}
		for _, doc := range emp.Documents {
			fmt.Printf("#%-3d %-30s %-10s %-10s %s\n",
				doc.ID, doc.Name, doc.Type, doc.Size, doc.UploadDate.Format(dateLayout))
		}
		return nil
	},
}

var docsAddCmd = &cobra.Command{
	Use:   "add EMPLOYEE_ID NAME",
	Short: "Attach a document to an employee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.currentActor(); err != nil {
			return err
		}

		docType, _ := cmd.Flags().GetString("type")
		url, _ := cmd.Flags().GetString("url")
		size, _ := cmd.Flags().GetString("size")

		emp, err := a.svc.AddDocument(cmd.Context(), employee.AddDocumentInput{
			EmployeeID: id,
			Name:       args[1],
			Type:       employee.DocumentType(docType),
			URL:        url,
			UploadDate: time.Now(),
			Size:       size,
		})
		if err != nil {
			return describeError(a, err)
		}

		fmt.Printf("Attached document to #%d %s (%d total)\n", emp.ID, emp.Name, len(emp.Documents))
		return nil
	},
}

var docsRemoveCmd = &cobra.Command{
	Use:   "remove EMPLOYEE_ID DOCUMENT_ID",
	Short: "Remove a document from an employee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := parseID(args[0])
		if err != nil {
			return err
		}
		documentID, err := parseID(args[1])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.currentActor(); err != nil {
			return err
		}

		emp, err := a.svc.RemoveDocument(cmd.Context(), employee.RemoveDocumentInput{
			EmployeeID: employeeID,
			DocumentID: documentID,
		})
		if err != nil {
			return describeError(a, err)
		}

		fmt.Printf("Removed document from #%d %s (%d remaining)\n", emp.ID, emp.Name, len(emp.Documents))
		return nil
	},
}

// history command

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View the edit history",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		action, _ := cmd.Flags().GetString("action")
		employeeID, _ := cmd.Flags().GetInt64("employee")

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		var entries []*history.Entry
		if employeeID > 0 {
			entries, err = a.svc.EditHistoryByEmployee(cmd.Context(), employeeID)
		} else {
			entries, err = a.svc.EditHistory(cmd.Context())
		}
		if err != nil {
			return err
		}

		entries = history.Filter(entries, search, action)
		if len(entries) == 0 {
			fmt.Println(a.i18n.Translate("No history entries", nil))
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("#%-3d %s  %-14s %-22s by %s\n",
				entry.ID,
				entry.Timestamp.Format("2006-01-02 15:04"),
				history.ActionLabel(entry.Action),
				entry.EmployeeName,
				entry.UpdatedBy,
			)
			for field, change := range entry.Changes {
				fmt.Printf("      %s\n", history.DescribeChange(field, change))
			}
		}
		return nil
	},
}

// dashboard command

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show headcount, salary and probation overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		employees, err := a.svc.ListEmployees(cmd.Context())
		if err != nil {
			return err
		}

		summary := report.Summarize(employees)
		fmt.Printf("%s: %d\n", a.i18n.Translate("Total Employees", nil), summary.Total)
		fmt.Printf("%s: %d\n", a.i18n.Translate("Active Employees", nil), summary.Active)
		fmt.Printf("%s: %d\n", a.i18n.Translate("Active Departments", nil), summary.Departments)
		fmt.Printf("%s: $%d\n", a.i18n.Translate("Average Salary", nil), summary.AverageSalary)

		fmt.Printf("\n%s:\n", a.i18n.Translate("Departments", nil))
		for _, dept := range report.GroupByDepartment(employees, employee.Departments) {
			fmt.Printf("  %-20s %3d  $%d\n", dept.Name, dept.Count, dept.AverageSalary)
		}

		fmt.Printf("\n%s:\n", a.i18n.Translate("Recent Hires", nil))
		for _, emp := range report.RecentHires(employees, 5) {
			fmt.Printf("  %-22s %-16s %s\n", emp.Name, emp.Department, emp.StartDate.Format(dateLayout))
		}

		today := time.Now()
		watch := report.ProbationWatch(employees)
		if len(watch) > 0 {
			fmt.Printf("\n%s:\n", a.i18n.Translate("On Probation", nil))
			for _, emp := range watch {
				if days := report.ProbationDaysLeft(emp, today); days > 0 {
					fmt.Printf("  %-22s %s\n", emp.Name,
						a.i18n.Translate("Probation ends in {days} days", i18n.Params{"days": days}))
				} else {
					fmt.Printf("  %-22s (%s)\n", emp.Name, emp.Probation)
				}
			}
		}
		return nil
	},
}

func printEmployee(a *app, emp *employee.Employee) {
	t := a.i18n
	fmt.Printf("#%d %s\n", emp.ID, emp.Name)
	fmt.Printf("  %s: %s\n", t.Translate("Employee Number", nil), emp.EmployeeNumber)
	fmt.Printf("  %s: %s\n", t.Translate("Position", nil), emp.Position)
	fmt.Printf("  %s: %s\n", t.Translate("Department", nil), emp.Department)
	fmt.Printf("  %s: %s\n", t.Translate("Status", nil), t.Translate(string(emp.Status), nil))
	fmt.Printf("  %s: %s\n", t.Translate("Employment Type", nil), t.Translate(string(emp.EmploymentType), nil))
	fmt.Printf("  %s: $%d\n", t.Translate("Annual Salary", nil), emp.Salary)
	fmt.Printf("  %s: %s\n", t.Translate("Email", nil), emp.Email)
	fmt.Printf("  %s: %s\n", t.Translate("Phone", nil), emp.Phone)
	fmt.Printf("  %s: %s\n", t.Translate("Start Date", nil), emp.StartDate.Format(dateLayout))
	if len(emp.Skills) > 0 {
		fmt.Printf("  Skills: %s\n", strings.Join(emp.Skills, ", "))
	}
	if emp.Probation.OnProbation {
		fmt.Printf("  %s: %s\n", t.Translate("Probation", nil), emp.Probation)
	}
	if len(emp.Documents) > 0 {
		fmt.Printf("  %s: %d\n", t.Translate("Documents", nil), len(emp.Documents))
	}
}

func describeError(a *app, err error) error {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return fmt.Errorf("%s", a.i18n.Translate("Employee not found", nil))
	default:
		return err
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input, e.g. in scripts.
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "Filter by name or employee number")
	listCmd.Flags().String("status", "", "Filter by status (Active or Inactive)")
	listCmd.Flags().StringP("department", "d", "", "Filter by department")

	addCmd.Flags().String("email", "", "Email address")
	addCmd.Flags().String("phone", "", "Phone number")
	addCmd.Flags().String("position", "", "Job title")
	addCmd.Flags().String("department", "", "Department name")
	addCmd.Flags().Int64("salary", 0, "Annual salary")
	addCmd.Flags().String("type", "", "Employment type (Full-time, Part-time, Contract, Probation)")
	addCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	addCmd.Flags().String("location", "", "Office location")
	addCmd.Flags().String("address", "", "Street address")
	addCmd.Flags().String("city", "", "City")
	addCmd.Flags().String("country", "", "Country")
	addCmd.Flags().String("manager", "", "Manager name")
	addCmd.Flags().String("schedule", "", "Work schedule")
	addCmd.Flags().String("bio", "", "Short introduction")
	addCmd.Flags().StringSlice("skills", nil, "Comma separated skills")
	addCmd.Flags().Int("probation-months", 0, "Probation duration in months")

	updateCmd.Flags().String("name", "", "Full name")
	updateCmd.Flags().String("email", "", "Email address")
	updateCmd.Flags().String("phone", "", "Phone number")
	updateCmd.Flags().String("position", "", "Job title")
	updateCmd.Flags().String("department", "", "Department name")
	updateCmd.Flags().Int64("salary", 0, "Annual salary")
	updateCmd.Flags().String("type", "", "Employment type")
	updateCmd.Flags().String("status", "", "Status (Active or Inactive)")
	updateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	updateCmd.Flags().String("location", "", "Office location")
	updateCmd.Flags().String("address", "", "Street address")
	updateCmd.Flags().String("city", "", "City")
	updateCmd.Flags().String("country", "", "Country")
	updateCmd.Flags().String("manager", "", "Manager name")
	updateCmd.Flags().String("schedule", "", "Work schedule")
	updateCmd.Flags().String("bio", "", "Short introduction")
	updateCmd.Flags().StringSlice("skills", nil, "Comma separated skills, replaces the current list")
	updateCmd.Flags().Int("probation-months", 0, "Probation duration in months, 0 clears the probation")

	docsAddCmd.Flags().String("type", "Other", "Document type (Contract, Proof, Other)")
	docsAddCmd.Flags().String("url", "", "Document URL")
	docsAddCmd.Flags().String("size", "", "Human readable size, e.g. 2.4 MB")
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsAddCmd)
	docsCmd.AddCommand(docsRemoveCmd)

	historyCmd.Flags().StringP("search", "s", "", "Filter by employee name or author")
	historyCmd.Flags().StringP("action", "a", history.ActionFilterAll, "Filter by action (created, updated, status_changed)")
	historyCmd.Flags().Int64P("employee", "e", 0, "Limit to a single employee id")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dashboardCmd)
}
