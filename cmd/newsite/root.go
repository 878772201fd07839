package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/newsite/internal/config"
	"github.com/raphi011/newsite/internal/log"
	"github.com/raphi011/newsite/internal/output"
	"github.com/raphi011/newsite/internal/scaffold"
	"github.com/raphi011/newsite/internal/ui/prompt"
	"github.com/raphi011/newsite/internal/ui/styles"
)

// rootOptions holds the global flags and the resources opened for a run.
type rootOptions struct {
	verbose bool
	quiet   bool

	// stdin and promptOut are handed to the prompter untouched so an
	// interactive prompt can talk to the terminal directly.
	stdin     io.Reader
	promptOut io.Writer

	// runLog is the open run log file, closed once the command returns
	runLog io.Closer
}

// newRootCmd creates the newsite command; there are no subcommands.
func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsite",
		Short: "Create a new converter site from the project template",
		Long: `newsite asks for the primary color, the conversion mode and the folder
of a new converter site, then runs create-project-from-template.sh from the
directory newsite is installed in.

Every answer is validated right away; the first invalid answer ends the run.`,
		Example: `  newsite                 # Answer the prompts interactively
  printf '#cc7aaa\nwebpToJpg\nmysite\ny\n' | newsite`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configOrDefault(ctx)

			// Flags are parsed by now, so the logger can honor them.
			logger := log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			if cfg.LogFile != "" {
				run, closer := log.OpenRunLog(cfg.LogFile)
				logger.SetRunLog(run)
				opts.runLog = closer
			}
			styles.Init(cfg.Theme)
			cmd.SetContext(log.WithLogger(ctx, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configOrDefault(ctx)

			dir, err := scaffold.InstallDir()
			if err != nil {
				return err
			}
			log.FromContext(ctx).Debug("resolved install dir", "dir", dir)

			c := &creator{
				prompter:   prompt.New(opts.stdin, opts.promptOut),
				runner:     scaffold.NewRunner(),
				scriptPath: scaffold.Resolve(dir, cfg.TemplateScript),
			}
			return c.run(ctx)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show the template script invocation")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress warnings and diagnostics")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

func configOrDefault(ctx context.Context) *config.Config {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg
	}
	def := config.Default()
	return &def
}

// Execute runs newsite with the process arguments and exits with the
// status of the run.
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	promptOut := stderr

	// Styled output is downsampled to what each stream supports; escape
	// codes are stripped entirely when it is not a terminal.
	stdout = colorprofile.NewWriter(stdout, os.Environ())
	stderr = colorprofile.NewWriter(stderr, os.Environ())

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &cfg)
	ctx = output.WithPrinter(ctx, stdout)

	opts := &rootOptions{stdin: stdin, promptOut: promptOut}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(ctx)
	if opts.runLog != nil {
		opts.runLog.Close()
	}

	code := exitCode(err)
	if err != nil && code != exitOK {
		fmt.Fprintln(stderr, styles.ErrorStyle.Render("Error: "+err.Error()))
	}
	return code
}
