package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/infra/auth"
	"github.com/CrestNiraj12/replydesk/infra/config"
	"github.com/CrestNiraj12/replydesk/infra/editor"
	"github.com/CrestNiraj12/replydesk/infra/logging"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// runtime is everything a command needs once configuration is loaded.
type runtime struct {
	cfg        config.Config
	logger     *zap.Logger
	media      app.MediaService
	comments   app.CommentService
	dispatcher *reply.Dispatcher
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}

// buildRuntime loads configuration and wires the services.
func buildRuntime(configPath string) (*runtime, error) {
	// 1. Load config from file, .env and environment.
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// 2. Session log; the terminal belongs to the TUI.
	logger, err := logging.Setup(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	// 3. Build infrastructure and services (concrete types satisfy app.* interfaces).
	tokens := auth.FromSettings(cfg.API.Token, cfg.API.TokenPath)
	client := replyapi.NewClient(cfg.API.BaseURL, tokens, cfg.API.Timeout, logger.Named("api"))
	comments := replyapi.NewCommentService(client)

	logger.Info("Starting",
		zap.String("version", version),
		zap.String("api", cfg.API.BaseURL),
		zap.String("account", cfg.Account.ID))

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		media:      replyapi.NewMediaService(client),
		comments:   comments,
		dispatcher: reply.NewDispatcher(comments, logger.Named("dispatch")),
	}, nil
}

func runTUI(rt *runtime) error {
	rootModel := tui.NewApp(tui.Deps{
		Media:            rt.media,
		Comments:         rt.comments,
		Dispatcher:       rt.dispatcher,
		Editor:           editor.NewEnvEditor(),
		Logger:           rt.logger.Named("tui"),
		AccountID:        rt.cfg.Account.ID,
		CommentsPageSize: rt.cfg.Comments.PageSize,
		HistoryPageSize:  rt.cfg.History.PageSize,
		SyncLimit:        rt.cfg.Comments.SyncLimit,
		ToastTTL:         rt.cfg.Notify.TTL,
	})

	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func versionString() string {
	v, c, d := version, commit, date
	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		settings := make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
		v, c, d = resolveVersionInfo(v, c, d, info.Main.Version, settings)
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, c, d)
}

func main() {
	cmd := newCLI(os.Stdout, buildRuntime).command()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "replydesk: %v\n", err)
		os.Exit(1)
	}
}
