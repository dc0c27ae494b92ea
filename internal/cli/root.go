// Package cli wires configuration, data and rendering into the notepad
// command line.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/i18n"
	"github.com/idilsaglam/notepad/internal/logging"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store/jsonstore"
	"github.com/idilsaglam/notepad/internal/ui"
)

// Options are the persistent root flags. Empty values leave the config
// file (or its defaults) in charge.
type Options struct {
	ConfigPath string
	Data       string
	Theme      string
	Locale     string
	Today      string
	Debug      bool
	Watch      bool
}

// session is everything a subcommand needs once flags and config are merged.
type session struct {
	cfg config.Config
	env ui.Env
	ds  model.Dataset
	log *zap.Logger
}

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opt Options
	var s *session

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal dashboard for dated cards",
		Long: `notepad shows a set of dated cards as a contribution heatmap of the
current year, a month-by-month timeline or a grid, next to a project
file tree.

Run without arguments to start the interactive dashboard.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help":
				return nil
			}
			var err error
			s, err = opt.open(cmd)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s != nil {
				_ = s.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, s)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	f := root.PersistentFlags()
	f.StringVar(&opt.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/notepad/config.yaml)")
	f.StringVar(&opt.Data, "data", "", "dataset JSON file (default: built-in cards)")
	f.StringVar(&opt.Theme, "theme", "", "color theme: "+strings.Join(config.Themes, ", "))
	f.StringVar(&opt.Locale, "locale", "", "UI language: "+strings.Join(i18n.Languages(), ", "))
	f.StringVar(&opt.Today, "today", "", "reference date YYYY-MM-DD (default: today)")
	f.BoolVar(&opt.Debug, "debug", false, "debug logging (needs log_file in the config)")
	f.BoolVar(&opt.Watch, "watch", false, "reload the dataset when the file changes (dashboard only)")

	sess := func() *session { return s }
	root.AddCommand(
		newDashboardCmd(sess),
		newHeatmapCmd(sess),
		newTimelineCmd(sess),
		newGridCmd(sess),
		newTreeCmd(sess),
		newShowCmd(sess),
		newVersionCmd(),
	)
	return root
}

// open loads the config, applies the flags that were set on the command
// line and builds the logger, translator, theme, clock and dataset.
func (o Options) open(cmd *cobra.Command) (*session, error) {
	path, explicit := o.ConfigPath, o.ConfigPath != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, usagef("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = o.Data
	}
	if flags.Changed("theme") {
		cfg.Theme = o.Theme
	}
	if flags.Changed("locale") {
		cfg.Locale = o.Locale
	}
	if flags.Changed("today") {
		cfg.Today = o.Today
	}
	if flags.Changed("debug") {
		cfg.Debug = o.Debug
	}
	if flags.Changed("watch") {
		cfg.Watch = o.Watch
	}
	if err := cfg.Validate(); err != nil {
		return nil, usagef("%v", err)
	}

	log, err := logging.New(logging.Options{File: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}
	tr, err := i18n.New(cfg.Locale, log)
	if err != nil {
		return nil, usagef("%v", err)
	}
	clock, err := cfg.ReferenceClock()
	if err != nil {
		return nil, usagef("%v", err)
	}
	ds, err := jsonstore.Load(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Data, err)
	}
	log.Debug("session ready",
		zap.String("command", cmd.Name()),
		zap.String("theme", cfg.Theme),
		zap.String("locale", tr.Lang()),
		zap.Int("cards", len(ds.Cards)),
	)

	return &session{
		cfg: cfg,
		env: ui.Env{Theme: ui.NewTheme(cfg.Theme), Tr: tr, Clock: clock, Log: log},
		ds:  ds,
		log: log,
	}, nil
}
