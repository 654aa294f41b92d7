// quickbird is a headless client for the QuickBird backend. It drives the
// same session and gateway layers the embedded SDK exposes, one subcommand
// per backend operation group.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickbird-app/quickbird-go/config"
	"github.com/quickbird-app/quickbird-go/internal/api"
	"github.com/quickbird-app/quickbird-go/internal/domain"
	"github.com/quickbird-app/quickbird-go/internal/poller"
	"github.com/quickbird-app/quickbird-go/internal/session"
	"github.com/quickbird-app/quickbird-go/internal/storage"
	"github.com/quickbird-app/quickbird-go/internal/timer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := newStorage(cfg)
	if err != nil {
		return err
	}
	client, err := api.New(cfg.API.BaseURL, store,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.RequestTimeout}),
		api.WithRateLimit(cfg.API.RateLimit))
	if err != nil {
		return err
	}
	sess := session.New(client, consoleNotifier{})
	client.SetUnauthorizedHook(func() {
		sess.Invalidate()
		fmt.Fprintln(os.Stderr, "Session expired. Run `quickbird login` to sign in again.")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{cfg: cfg, store: store, client: client, sess: sess}
	return app.dispatch(ctx, args[0], args[1:])
}

type app struct {
	cfg    *config.Config
	store  storage.Storage
	client *api.Client
	sess   *session.Store
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.sess.Logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "projects":
		return a.projects(ctx, args)
	case "tasks":
		return a.tasks(ctx, args)
	case "clients":
		return a.clients(ctx, args)
	case "invoices":
		return a.invoices(ctx, args)
	case "milestones":
		return a.milestones(ctx, args)
	case "worklogs":
		return a.worklogs(ctx, args)
	case "notifications":
		return a.notifications(ctx, args)
	case "ai":
		return a.generate(ctx, args)
	case "analytics":
		return a.analytics(ctx, args)
	case "upload":
		return a.upload(ctx, args)
	case "theme":
		return a.theme(args)
	case "timer":
		return a.timer(ctx, args)
	case "watch":
		return a.watch(ctx, args)
	case "version":
		fmt.Println(a.cfg.App.Version)
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}
	return a.sess.Login(ctx, *email, *password)
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	username := fs.String("username", "", "account username")
	name := fs.String("name", "", "full name")
	fs.Parse(args)
	if *email == "" || *password == "" || *username == "" {
		return fmt.Errorf("register requires -email, -password and -username")
	}
	req := domain.RegisterRequest{Email: *email, Password: *password, Username: *username}
	if *name != "" {
		req.FullName = name
	}
	return a.sess.Register(ctx, req)
}

func (a *app) whoami(ctx context.Context) error {
	a.sess.Initialize(ctx)
	if !a.sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	return printJSON(a.sess.User())
}

func (a *app) projects(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		out, err := a.client.ListProjects(ctx)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		fs := flag.NewFlagSet("projects create", flag.ExitOnError)
		title := fs.String("title", "", "project title")
		clientName := fs.String("client", "", "client name")
		budget := fs.Float64("budget", 0, "project budget")
		fs.Parse(rest)
		if *title == "" {
			return fmt.Errorf("projects create requires -title")
		}
		req := domain.CreateProjectRequest{Title: *title}
		if *clientName != "" {
			req.ClientName = clientName
		}
		if *budget > 0 {
			req.Budget = budget
		}
		out, err := a.client.CreateProject(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return a.client.DeleteProject(ctx, id)
	default:
		return fmt.Errorf("unknown projects subcommand %q", sub)
	}
}

func (a *app) tasks(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		fs := flag.NewFlagSet("tasks list", flag.ExitOnError)
		project := fs.Int64("project", 0, "filter by project id")
		fs.Parse(rest)
		var projectID *int64
		if *project > 0 {
			projectID = project
		}
		out, err := a.client.ListTasks(ctx, projectID)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		fs := flag.NewFlagSet("tasks create", flag.ExitOnError)
		title := fs.String("title", "", "task title")
		project := fs.Int64("project", 0, "project id")
		priority := fs.String("priority", "", "low, medium, high or urgent")
		fs.Parse(rest)
		if *title == "" {
			return fmt.Errorf("tasks create requires -title")
		}
		req := domain.CreateTaskRequest{Title: *title, Priority: *priority}
		if *project > 0 {
			req.ProjectID = project
		}
		out, err := a.client.CreateTask(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "done":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		status := domain.TaskCompleted
		out, err := a.client.UpdateTask(ctx, id, domain.UpdateTaskRequest{Status: &status})
		if err != nil {
			return err
		}
		return printJSON(out)
	case "delete":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return a.client.DeleteTask(ctx, id)
	default:
		return fmt.Errorf("unknown tasks subcommand %q", sub)
	}
}

func (a *app) clients(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		out, err := a.client.ListClients(ctx)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "toggle":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		out, err := a.client.ToggleClientStatus(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println(out.Message)
		return nil
	default:
		return fmt.Errorf("unknown clients subcommand %q", sub)
	}
}

func (a *app) invoices(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		out, err := a.client.ListInvoices(ctx)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "send":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.client.SendInvoice(ctx, id, domain.SendInvoiceRequest{}); err != nil {
			return err
		}
		fmt.Println("Invoice sent.")
		return nil
	case "pdf":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		out, err := a.client.GenerateInvoicePDF(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out)
	default:
		return fmt.Errorf("unknown invoices subcommand %q", sub)
	}
}

func (a *app) milestones(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		fs := flag.NewFlagSet("milestones list", flag.ExitOnError)
		project := fs.Int64("project", 0, "filter by project id")
		fs.Parse(rest)
		var projectID *int64
		if *project > 0 {
			projectID = project
		}
		out, err := a.client.ListMilestones(ctx, projectID)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "progress":
		fs := flag.NewFlagSet("milestones progress", flag.ExitOnError)
		id := fs.Int64("id", 0, "milestone id")
		pct := fs.Int("pct", 0, "completion percentage")
		fs.Parse(rest)
		if *id == 0 {
			return fmt.Errorf("milestones progress requires -id")
		}
		out, err := a.client.UpdateMilestoneProgress(ctx, *id, *pct)
		if err != nil {
			return err
		}
		fmt.Println(out.Message)
		return nil
	default:
		return fmt.Errorf("unknown milestones subcommand %q", sub)
	}
}

func (a *app) worklogs(ctx context.Context, args []string) error {
	sub, _ := subcommand(args, "list")
	switch sub {
	case "list":
		out, err := a.client.ListWorkLogs(ctx, nil, nil)
		if err != nil {
			return err
		}
		return printJSON(out)
	default:
		return fmt.Errorf("unknown worklogs subcommand %q", sub)
	}
}

func (a *app) notifications(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		fs := flag.NewFlagSet("notifications list", flag.ExitOnError)
		unread := fs.Bool("unread", false, "unread only")
		fs.Parse(rest)
		out, err := a.client.ListNotifications(ctx, domain.NotificationFilter{UnreadOnly: *unread})
		if err != nil {
			return err
		}
		return printJSON(out)
	case "read-all":
		out, err := a.client.MarkAllNotificationsRead(ctx)
		if err != nil {
			return err
		}
		fmt.Println(out.Message)
		return nil
	case "stats":
		out, err := a.client.NotificationStats(ctx)
		if err != nil {
			return err
		}
		return printJSON(out)
	default:
		return fmt.Errorf("unknown notifications subcommand %q", sub)
	}
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ai", flag.ExitOnError)
	tool := fs.String("tool", domain.ToolProposal, "proposal, contract, invoice or task_breakdown")
	prompt := fs.String("prompt", "", "generation prompt")
	fs.Parse(args)
	if *prompt == "" {
		// No prompt means the user wants the usage counters.
		out, err := a.client.UsageStats(ctx)
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	out, err := a.client.GenerateContent(ctx, domain.AIRequest{Tool: *tool, Prompt: *prompt})
	if err != nil {
		return err
	}
	fmt.Println(out.Result)
	fmt.Printf("Usage: %d/%d\n", out.UsageCount, out.UsageLimit)
	return nil
}

func (a *app) analytics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	timeRange := fs.String("range", "30", "time range in days")
	trend := fs.Bool("trend", false, "show the revenue trend instead of the summary")
	fs.Parse(args)
	if *trend {
		out, err := a.client.GetRevenueTrend(ctx, atoiDefault(*timeRange, 30))
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	out, err := a.client.GetAnalytics(ctx, *timeRange)
	if err != nil {
		return err
	}
	return printJSON(out)
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	path := fs.String("file", "", "path to the file to upload")
	uploadType := fs.String("type", domain.UploadProject, "avatar, project or task")
	fs.Parse(args)
	if *path == "" {
		return fmt.Errorf("upload requires -file")
	}
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	out, err := a.client.UploadFile(ctx, filepath.Base(*path), f, *uploadType)
	if err != nil {
		return err
	}
	return printJSON(out)
}

func (a *app) theme(args []string) error {
	if len(args) == 0 {
		mode, err := a.store.Get(storage.KeyThemeMode)
		if err == storage.ErrNotFound {
			mode = a.cfg.App.ThemeMode
		} else if err != nil {
			return err
		}
		fmt.Println(mode)
		return nil
	}
	mode := args[0]
	if mode != "light" && mode != "dark" {
		return fmt.Errorf("theme must be light or dark")
	}
	return a.store.Set(storage.KeyThemeMode, mode)
}

// timer tracks elapsed time against a task until interrupted, then records
// the block as a work log.
func (a *app) timer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("timer", flag.ExitOnError)
	taskID := fs.Int64("task", 0, "task id to track against")
	interval := fs.Duration("interval", time.Second, "display refresh interval")
	fs.Parse(args)
	if *taskID == 0 {
		return fmt.Errorf("timer requires -task")
	}

	task, err := a.client.GetTask(ctx, *taskID)
	if err != nil {
		return err
	}
	fmt.Printf("Tracking %q. Press Ctrl-C to stop and log the time.\n", task.Title)

	t := timer.Start(*taskID)
	t.Run(ctx, *interval, func(elapsed time.Duration) {
		fmt.Printf("\r%s", elapsed.Truncate(time.Second))
	})
	fmt.Println()

	hours := t.Hours()
	if hours <= 0 {
		return nil
	}
	start := t.StartTime()
	end := time.Now()
	// ctx is already cancelled by the interrupt; log the work on a fresh one.
	logCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	w, err := a.client.CreateWorkLog(logCtx, domain.CreateWorkLogRequest{
		Title:       fmt.Sprintf("Work on %s", task.Title),
		TaskID:      taskID,
		HoursWorked: hours,
		StartTime:   &start,
		EndTime:     &end,
	})
	if err != nil {
		return fmt.Errorf("log tracked time: %w", err)
	}
	fmt.Printf("Logged %.2fh as work log %d.\n", w.HoursWorked, w.ID)
	return nil
}

// watch polls notifications on a schedule and prints changes until
// interrupted.
func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	every := fs.String("every", "30s", "poll interval")
	fs.Parse(args)

	p := poller.New(a.client, func(u poller.Update) {
		if u.Stats != nil {
			fmt.Printf("[%s] unread=%d high-priority=%d\n",
				time.Now().Format("15:04:05"), u.Stats.UnreadNotifications, u.Stats.HighPriorityUnread)
		}
		for _, n := range u.Unread {
			fmt.Printf("  - %s: %s\n", n.Title, n.Message)
		}
	})
	if err := p.Start(ctx, "@every "+*every); err != nil {
		return err
	}
	defer p.Stop()
	<-ctx.Done()
	return nil
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Storage.RedisAddr,
			DB:   cfg.Storage.RedisDB,
		})
		return storage.NewRedisStorage(client), nil
	case "memory":
		return storage.NewMemoryStorage(), nil
	default:
		return storage.NewFileStorage(cfg.Storage.FilePath)
	}
}

// consoleNotifier prints session outcomes straight to the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Success(message string) { fmt.Println(message) }
func (consoleNotifier) Error(message string)   { fmt.Fprintln(os.Stderr, message) }

func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 {
		return def, nil
	}
	return args[0], args[1:]
}

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id argument")
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func atoiDefault(s string, def int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return def
	}
	return n
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: quickbird <command> [flags]

Commands:
  login         -email -password
  register      -email -password -username [-name]
  logout
  whoami
  projects      list | create -title [-client] [-budget] | delete <id>
  tasks         list [-project] | create -title [-project] [-priority] | done <id> | delete <id>
  clients       list | toggle <id>
  invoices      list | send <id> | pdf <id>
  milestones    list [-project] | progress -id -pct
  worklogs      list
  notifications list [-unread] | read-all | stats
  ai            -prompt [-tool]
  analytics     [-range] [-trend]
  upload        -file [-type]
  theme         [light|dark]
  timer         -task [-interval]
  watch         [-every]
  version`)
}
