// Package main provides the CLI entry point for idemfs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/idemfs/pkg/adapters/logger"
	"github.com/user/idemfs/pkg/adapters/osfilesystem"
	"github.com/user/idemfs/pkg/config"
	"github.com/user/idemfs/pkg/idemfs"
	"github.com/user/idemfs/pkg/manifest"
	"github.com/user/idemfs/pkg/orchestrator"
	"github.com/user/idemfs/pkg/ports"
	"github.com/user/idemfs/pkg/summarizer"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(append([]string{"idemfs"}, args...)); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(stderr, msg)
			}
			return exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "idemfs: %v\n", err)
		return 1
	}
	return 0
}

// session holds what Before sets up for the commands of one run.
type session struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	log    ports.Logger
	sync   func() error
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{stdout: stdout, stderr: stderr}

	return &cli.App{
		Name:            "idemfs",
		Usage:           l10n.T("Idempotent filesystem operations"),
		Description:     l10n.T("idemfs creates and removes files and directories, treating an already satisfied request as success."),
		Version:         version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		ExitErrHandler:  func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("Path to a YAML configuration file"),
				EnvVars:  []string{"IDEMFS_CONFIG"},
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "log-format",
				Usage:    l10n.T("Log format (text, json)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Before: s.before,
		After: func(*cli.Context) error {
			if s.sync != nil {
				// Sync on a terminal or pipe can fail with EINVAL; the
				// entries are already written.
				_ = s.sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "mkdir",
				Usage:     l10n.T("Create directories"),
				ArgsUsage: "PATH...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "parents", Aliases: []string{"p"}, Usage: l10n.T("Create missing parent directories")},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("parents") {
						return forEachPath(c, idemfs.CreateDirAll)
					}
					return forEachPath(c, idemfs.CreateDir)
				},
			},
			{
				Name:      "touch",
				Usage:     l10n.T("Create empty files, leaving existing files untouched"),
				ArgsUsage: "PATH...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "parents", Aliases: []string{"p"}, Usage: l10n.T("Create missing parent directories")},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("parents") {
						return forEachPath(c, idemfs.CreateFileAll)
					}
					return forEachPath(c, idemfs.CreateFile)
				},
			},
			{
				Name:      "rmdir",
				Usage:     l10n.T("Remove directories, skipping missing or populated ones"),
				ArgsUsage: "PATH...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: l10n.T("Remove directories and their contents")},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("recursive") {
						return forEachPath(c, idemfs.RemoveDirAll)
					}
					return forEachPath(c, idemfs.RemoveDir)
				},
			},
			{
				Name:      "rmf",
				Usage:     l10n.T("Remove files or symbolic links"),
				ArgsUsage: "PATH...",
				Action: func(c *cli.Context) error {
					return forEachPath(c, idemfs.RemoveFile)
				},
			},
			{
				Name:      "rm",
				Usage:     l10n.T("Remove files, symbolic links or whole directories"),
				ArgsUsage: "PATH...",
				Action: func(c *cli.Context) error {
					return forEachPath(c, idemfs.Remove)
				},
			},
			{
				Name:      "isdir",
				Usage:     l10n.T("Print whether a path is a directory, following symbolic links"),
				ArgsUsage: "PATH",
				Action:    s.isDir,
			},
			{
				Name:      "apply",
				Usage:     l10n.T("Apply a YAML or TOML manifest of steps"),
				ArgsUsage: "MANIFEST",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a summary to this file (Markdown, or YAML for .yaml/.yml)")},
					&cli.BoolFlag{Name: "continue", Usage: l10n.T("Keep going after a failed step")},
				},
				Action: s.apply,
			},
		},
	}
}

// before loads configuration, applies flag overrides and installs the
// logger on the default idemfs instance.
func (s *session) before(c *cli.Context) error {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.Bool("quiet") {
		cfg.Quiet = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	switch {
	case cfg.Quiet:
		s.log = logger.NewNoop()
	case cfg.LogFormat == config.FormatJSON:
		z := logger.NewZap(cfg.Level(), s.stderr)
		s.log, s.sync = z, z.Sync
	default:
		// Logs go to stderr so that stdout only carries command output.
		s.log = logger.NewConsoleWriters(cfg.Level(), s.stderr, s.stderr)
	}

	idemfs.SetDefault(idemfs.New(osfilesystem.New(), s.log))
	return nil
}

func forEachPath(c *cli.Context, op func(string) error) error {
	if c.NArg() == 0 {
		return errors.New(l10n.T("at least one path is required"))
	}
	for _, path := range c.Args().Slice() {
		if err := op(path); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) isDir(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("exactly one path is required"))
	}
	isDir, err := idemfs.IsDir(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(s.stdout, isDir)
	return nil
}

func (s *session) apply(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("exactly one manifest is required"))
	}
	m, err := manifest.Load(c.Args().First())
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	orchConfig := s.cfg.ToOrchestratorConfig()
	if c.Bool("continue") {
		orchConfig.ContinueOnError = true
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			s.log.Warn("Interrupted, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	orch := orchestrator.New(orchestrator.NewStepStage(idemfs.Default()), s.log.WithComponent("apply"))
	result, runErr := orch.Run(ctx, m, orchConfig)

	summaryPath := c.String("summary")
	if summaryPath == "" {
		summaryPath = s.cfg.Summary
	}
	if summaryPath != "" {
		summary := summarizer.NewBuilder().
			WithManifest(m.Source, m.Root).
			WithSettings(summarizer.Settings{ContinueOnError: orchConfig.ContinueOnError}).
			WithRun(result).
			Build()
		writer := summarizer.NewWriter(summarizer.FormatterFor(summaryPath), idemfs.Default())
		if err := writer.Write(summaryPath, summary); err != nil {
			s.log.Error("Failed to write summary: %s", err)
			return errors.Join(runErr, fmt.Errorf("write summary: %w", err))
		}
		s.log.Info("Summary saved to %s", summaryPath)
	}

	return runErr
}
