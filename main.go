package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/andareed/siftly-sheet/config"
	"github.com/andareed/siftly-sheet/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

//go:embed about.md
var aboutMarkdown string

const sampleSource = "(sample)"

var (
	logFile     string
	configPath  string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "sfsheet [file]",
	Short: "Browse a log with details in a draggable bottom sheet",
	Long: `sfsheet - browse the lines of a file and open row details, help and
file prompts in a modal bottom sheet that can be dragged down to close.

Without a file a built-in sample log is shown.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "debug", "", "write debug logs to file")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file, reloaded on change")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// --- EARLY EXIT ---
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
		return nil
	}

	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()
	logging.Infof("sfsheet %s: started", Version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	source, rows := sampleSource, sampleRows()
	if len(args) == 1 {
		source = args[0]
		if rows, err = loadRowsFile(source); err != nil {
			return err
		}
	}

	m := newModel(source, rows, cfg)
	// draw straight away instead of waiting for the first resize
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.resize(w, h)
		m.sheet.SetSize(w, h)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if configPath != "" {
		g.Go(func() error {
			return config.Watch(ctx, configPath, func(c config.Config, err error) {
				p.Send(configReloadedMsg{cfg: c, err: err})
			})
		})
	}

	if err := g.Wait(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return err
	}
	logging.Infof("sfsheet: exited")
	return nil
}
