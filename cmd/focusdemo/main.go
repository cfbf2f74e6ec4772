package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"focuskit/internal/config"
	"focuskit/internal/focus"
	"focuskit/internal/logging"
	"focuskit/internal/trace"
	"focuskit/internal/ui"
)

// shutdownTimeout bounds the final span flush.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "focusdemo",
		Short: "Interactive focus trap and roving tab index demo",
		Long: `focusdemo runs two terminal pages backed by an in-process document:
a modal dialog that traps Tab and Shift+Tab and restores focus on close, and a
tablist where arrow keys, Home and End move a roving tab index.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setup(cmd, cfgFile)
			if err != nil {
				return err
			}
			runErr := runProgram(s.model)
			return errors.Join(runErr, s.close())
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/focuskit/focuskit.yaml or ./focuskit.yaml)")
	f.String("demo", config.DemoModal, `demo to start with ("modal" or "tabs")`)
	f.StringSlice("tab", nil, "tab label for the tabs demo (repeatable)")
	f.String("leader", ui.DefaultLeaderKey, "leader key for demo commands")
	f.Int("history", trace.DefaultHistory, "focus events kept in the on-screen log")
	f.String("log-level", "info", `log level ("debug", "info", "warn", "error")`)
	f.String("log-file", "", "append logs to this file")
	f.String("trace-stdout", "", "write focus spans as JSON to this file")
	f.String("otlp-endpoint", "", "export focus spans to this OTLP/HTTP collector (host:port)")
	return cmd
}

// session holds what setup built and how to release it.
type session struct {
	model    tea.Model
	recorder *trace.Recorder
	closers  []func() error
}

func (s *session) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	errs := []error{s.recorder.Shutdown(ctx)}
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

// setup loads configuration and wires logging and tracing into the UI model.
func setup(cmd *cobra.Command, cfgFile string) (*session, error) {
	cfg, err := config.Load(cmd, cfgFile)
	if err != nil {
		return nil, err
	}

	closeLog, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	s := &session{closers: []func() error{closeLog}}

	var stdout io.Writer
	if cfg.Trace.Stdout != "" {
		f, err := os.Create(cfg.Trace.Stdout)
		if err != nil {
			_ = closeLog()
			return nil, fmt.Errorf("open trace output: %w", err)
		}
		stdout = f
		s.closers = append(s.closers, f.Close)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := trace.NewProvider(ctx, trace.Config{
		ServiceName:  cfg.Trace.ServiceName,
		OTLPEndpoint: cfg.Trace.OTLPEndpoint,
		Insecure:     cfg.Trace.Insecure,
		Stdout:       stdout,
	})
	if err != nil {
		for i := len(s.closers) - 1; i >= 0; i-- {
			_ = s.closers[i]()
		}
		return nil, err
	}
	s.recorder = trace.NewRecorder(provider, cfg.History)

	logging.Infof("starting demo=%s tabs=%d leader=%s tracing=%v", cfg.Demo, len(cfg.Tabs), cfg.Leader, provider != nil)
	s.model = ui.NewAppModel(ui.Options{
		Mode:     ui.ModeFromConfig(cfg.Demo),
		Tabs:     cfg.Tabs,
		Leader:   cfg.Leader,
		Recorder: s.recorder,
		Observer: focus.Observer(logging.FocusEvent),
	}).AsTeaModel()
	return s, nil
}

func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Errorf("program: %v", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
