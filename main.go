package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/resetconfig/internal/app"
	"github.com/llehouerou/resetconfig/internal/config"
	"github.com/llehouerou/resetconfig/internal/errmsg"
	"github.com/llehouerou/resetconfig/internal/keymap"
	"github.com/llehouerou/resetconfig/internal/logging"
	"github.com/llehouerou/resetconfig/internal/notify"
	"github.com/llehouerou/resetconfig/internal/prefs"
	"github.com/llehouerou/resetconfig/internal/reset"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "resetconfig",
		Short:        "Reset application preferences to their defaults",
		Long:         "Opens the Reset Configuration dialog. Pick the categories to restore, then proceed.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.Setup(os.Stderr, opts.debug)
		},
		RunE: func(*cobra.Command, []string) error {
			return runDialog(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/resetconfig/config.toml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newApplyCmd(opts), newShowCmd(opts))
	return cmd
}

// session holds what every command opens: configuration, the preference
// store and the command registry with the user's overrides applied.
type session struct {
	cfg      *config.Config
	store    *prefs.SQLite
	registry *keymap.Registry
}

func openSession(opts *rootOptions) (*session, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if cfg.Debug {
		opts.debug = true
		logging.SetDebug(true)
	}

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpPrefsOpen, cfg.PrefsPath, err))
	}

	excluded := keymap.NewExclusionList(keymap.DefaultExcluded...).With(cfg.ExcludedKeys...)
	registry := keymap.NewRegistry(keymap.Defaults, excluded)
	unknown, err := reset.LoadBindings(registry, store)
	if err != nil {
		_ = store.Close()
		return nil, errors.New(errmsg.Format(errmsg.OpPrefsRead, err))
	}
	if len(unknown) > 0 {
		logging.Warnf("ignoring shortcut overrides for unknown commands: %s", strings.Join(unknown, ", "))
	}

	return &session{cfg: cfg, store: store, registry: registry}, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return config.LoadFrom([]string{path})
}

func (s *session) coordinator(refresher reset.Refresher) *reset.Coordinator {
	return reset.New(s.store, s.registry,
		reset.WithEnv(reset.DefaultEnv()),
		reset.WithPluginRegistry(s.cfg.PluginRegistry),
		reset.WithRefresher(refresher),
	)
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		logging.Warnf("close preferences: %v", err)
	}
}

func runDialog(opts *rootOptions) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	logFile, err := logging.OpenFile(opts.debug)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logFile.Close()

	notifier := notify.Disabled()
	if s.cfg.NotificationsEnabled() {
		if n, nerr := notify.New(); nerr != nil {
			logging.Warnf("desktop notifications unavailable: %v", nerr)
		} else {
			notifier = n
		}
	}

	host := app.NewHost(s.store, s.registry)
	model := app.New(s.coordinator(host), host, app.Options{
		Notifier:      notifier,
		Notifications: s.cfg.NotificationsEnabled(),
		Initial:       reset.Selection{UseFullKeys: s.cfg.UseFullKeys()},
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run dialog: %w", err)
	}

	res := final.(app.Model).Result()
	switch {
	case res == nil:
		return nil
	case !res.OK():
		return errors.New(errmsg.Format(errmsg.OpReset, res.Err))
	default:
		fmt.Println(summary(*res))
		return nil
	}
}

func summary(res reset.Result) string {
	if len(res.Applied) == 0 {
		return "Nothing was reset."
	}
	names := make([]string, len(res.Applied))
	for i, c := range res.Applied {
		names[i] = c.Label()
	}
	return "Reset " + strings.Join(names, ", ") + "."
}
