package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"duke/internal/config"
	"duke/internal/logging"
	"duke/internal/repository/sqlite"
	"duke/internal/services"
	"duke/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrCommandFailed is returned when a command was rejected or the stored
// tasks could not be loaded. The reason has already been written to the output.
var ErrCommandFailed = stderrors.New("command failed")

// RepositoryOpener opens the task repository for a loaded configuration
type RepositoryOpener func(cfg *config.Config, logger logrus.FieldLogger) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd            *cobra.Command
	loader         *config.Loader
	openRepository RepositoryOpener

	config *config.Config
	logger logrus.FieldLogger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, opener RepositoryOpener) *RootCommand {
	root := &RootCommand{
		loader:         loader,
		openRepository: opener,
		in:             os.Stdin,
		out:            os.Stdout,
		errOut:         os.Stderr,
	}

	root.cmd = &cobra.Command{
		Use:   "duke",
		Short: "A text-command task tracker",
		Long: `Duke keeps a list of todos, deadlines and events.

Run without a subcommand to start an interactive session. Each line is one command:
  todo <description>                       # Add a plain task
  deadline <description> /by <yyyy-mm-dd>  # Add a task with a due date
  event <description> /at <yyyy-mm-dd>     # Add a task with an occurrence date
  list                                     # Show every task
  mark <index> / unmark <index>            # Set or clear completion
  delete <index>                           # Remove a task
  find <text>                              # Show tasks whose name contains text
  bye                                      # End the session

CONFIGURATION:
  Priority order: command-line flags > DUKE_ environment variables (also read
  from .env) > duke.yaml > defaults

    DUKE_DATABASE_DIR                      Database directory (default: ~/.duke)
    DUKE_DATABASE_FILENAME                 Database filename, or :memory: (default: duke.db)
    DUKE_DATABASE_QUERY_TIMEOUT            Query timeout (default: 10s)
    DUKE_DATABASE_WRITE_TIMEOUT            Write timeout (default: 5s)
    DUKE_DISPLAY_FIND_NUMBERING            ordinal or position (default: ordinal)
    DUKE_APPLICATION_LOG_LEVEL             Log level (default: info)
    DUKE_APPLICATION_VERBOSE               Debug logging (default: false)
    DUKE_DEBUG                             Debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withSession(cmd.Context(), func(s *Session) error {
				if err := s.Run(cmd.Context(), root.in, root.out); err != nil {
					if s.LoadErr() != nil {
						// the loading error has already been shown
						return ErrCommandFailed
					}
					return err
				}
				return nil
			})
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetIO replaces the standard streams, mainly for tests
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in = in
	r.out = out
	r.errOut = errOut
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// SetArgs sets the arguments parsed by Execute
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides DUKE_DATABASE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides DUKE_DATABASE_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides DUKE_DATABASE_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides DUKE_DATABASE_WRITE_TIMEOUT)")
	flags.String("find-numbering", "", "Number find results by ordinal or position (overrides DUKE_DISPLAY_FIND_NUMBERING)")
	flags.String("log-level", "", "Log level (overrides DUKE_APPLICATION_LOG_LEVEL)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides DUKE_APPLICATION_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	execCmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a single command",
		Long: `Run one command as if it were typed into an interactive session.

Examples:
  duke exec todo read book
  duke exec deadline return book /by 2024-06-06
  duke exec list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withSession(cmd.Context(), func(s *Session) error {
				if s.LoadErr() != nil {
					fmt.Fprintln(r.out, s.formatter.LoadingError())
					return ErrCommandFailed
				}
				output, _, err := s.Process(cmd.Context(), strings.Join(args, " "))
				fmt.Fprintln(r.out, output)
				if err != nil {
					return ErrCommandFailed
				}
				return nil
			})
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print every task in its rendered form",
		Long: `Print every task, one per line, in the same form list shows them.
The output can be read back with import.

Example:
  duke export > tasks.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withSession(cmd.Context(), func(s *Session) error {
				if err := s.LoadErr(); err != nil {
					return s.errors.Handle("export tasks", err)
				}
				for _, task := range s.Tasks() {
					fmt.Fprintln(r.out, task.Render())
				}
				return nil
			})
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append tasks from a file written by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			return r.withSession(cmd.Context(), func(s *Session) error {
				if err := s.LoadErr(); err != nil {
					return s.errors.Handle("import tasks", err)
				}
				n, err := s.Import(cmd.Context(), lines)
				if err != nil {
					return s.errors.Handle("import tasks", err)
				}
				fmt.Fprintf(r.out, "Imported %d tasks. Now you have %d tasks in the list.\n", n, len(s.Tasks()))
				return nil
			})
		},
	}

	// everything after the verb belongs to the command line, not to cobra
	execCmd.Flags().SetInterspersed(false)

	r.cmd.AddCommand(execCmd, exportCmd, importCmd)
}

// loadConfig loads the configuration, applies flag overrides and builds the logger
func (r *RootCommand) loadConfig() error {
	cfg, err := r.loader.LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg

	logger, err := logging.New(logging.Options{
		Level:   cfg.Application.LogLevel,
		Verbose: cfg.Application.Verbose,
		Output:  r.errOut,
	})
	if err != nil {
		return err
	}
	r.logger = logging.WithSession(logger, logging.NewSessionID())
	return nil
}

// overridesFromFlags collects the flags given on the command line
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("find-numbering") {
		v, _ := flags.GetString("find-numbering")
		overrides.FindNumbering = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// withSession opens the repository, runs fn with a loaded session and closes
// the repository. A repository that cannot be opened is reported through the
// session's LoadErr.
func (r *RootCommand) withSession(ctx context.Context, fn func(*Session) error) error {
	var store services.TaskStore
	repo, err := r.openRepository(r.config, r.logger)
	if err != nil {
		r.logger.WithError(err).Error("failed to open repository")
	} else {
		defer repo.Close()
		store = services.NewTaskStore(repo)
	}

	formatter := ui.NewFormatter(r.config.Display)
	session := NewSession(ctx, store, formatter, r.logger)
	if err != nil {
		session.loadErr = err
	}
	return fn(session)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
