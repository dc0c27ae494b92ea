package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/calendar"
	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store/jsonstore"
	"github.com/idilsaglam/notepad/internal/timeline"
	"github.com/idilsaglam/notepad/internal/ui"
)

const maxHeatmapWidth = 80

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}

func width() int {
	w, _ := ui.TermSize()
	return w
}

func newDashboardCmd(s func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Start the interactive dashboard (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, s())
		},
	}
}

func runDashboard(cmd *cobra.Command, s *session) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := ui.NewDashboard(s.env, s.ds)
	switch {
	case s.cfg.Watch && s.cfg.Data == "":
		s.log.Warn("watch ignored: no data file")
	case s.cfg.Watch:
		ch, err := jsonstore.Watch(ctx, s.cfg.Data, s.log)
		if err != nil {
			return err
		}
		m = m.WithReloads(ch)
		s.log.Info("watching dataset", zap.String("path", s.cfg.Data))
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

func newHeatmapCmd(s func() *session) *cobra.Command {
	var days bool
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Print the contribution heatmap of the reference year",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := s()
			counts := calendar.Aggregate(ss.ds.Cards)
			ref := ss.env.Clock.Now()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.RenderHeatmap(ss.env, counts, ref, min(width(), maxHeatmapWidth)))
			if days {
				for _, ln := range ui.DayTooltips(ss.env, counts, ref) {
					fmt.Fprintln(out, ln)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&days, "days", false, "also list every day that has cards")
	return cmd
}

func newTimelineCmd(s func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Print the cards grouped by month, newest first",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := s()
			l := ui.RenderTimeline(ss.env, timeline.Group(ss.ds.Cards), width(), -1)
			fmt.Fprintln(cmd.OutOrStdout(), l.Content)
			return nil
		},
	}
}

func newGridCmd(s func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Print the cards as a grid in file order",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := s()
			l := ui.RenderGrid(ss.env, ss.ds.Cards, width(), -1)
			fmt.Fprintln(cmd.OutOrStdout(), l.Content)
			return nil
		},
	}
}

func newTreeCmd(s func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the project tree fully expanded",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := s()
			t := ui.NewTree(ss.ds.Tree)
			t.ExpandAll()
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(t.RenderLines(ss.env, false), "\n"))
			return nil
		},
	}
}

func newShowCmd(s func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one card in full",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("show takes exactly one card id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("show: not a number: %s", args[0])
			}
			ss := s()
			it, ok := model.Find(ss.ds.Cards, id)
			if !ok {
				return usagef("show: no card with id %d", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.CardDetail(ss.env, it, width()))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", config.AppName, config.Version, config.Commit)
			return nil
		},
	}
}
