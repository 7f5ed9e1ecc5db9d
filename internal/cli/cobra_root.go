package cli

import (
	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/store"
)

// RootCommand represents the base command: running it starts the
// interactive menu session.
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An interactive to-do list manager",
		Long: `todo is an interactive command-line to-do list manager.

Running it starts a menu session (choices 1-7): view tasks, add a task
with a priority, sort, filter by priority or status, toggle completion,
delete, and exit-and-save. The list is persisted on exit as a JSON array
file (or a SQLite database with --backend sqlite).

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .todo.toml > ~/.todo/config.toml > defaults

    TODO_BACKEND                   Storage backend: json or sqlite (default: json)
    TODO_DATA_DIR                  Data directory (default: ~/.todo)
    TODO_DATA_FILENAME             Data filename (default: tasks.json / tasks.db)
    TODO_DISPLAY_PRIORITY_WIDTH    Priority label width (default: 6)
    TODO_VALIDATION_TASK_NAME_MIN  Min task name length (default: 1)
    TODO_VALIDATION_TASK_NAME_MAX  Max task name length (default: 255)
    TODO_VERBOSE                   Print the data file path at startup (default: false)
    TODO_DEBUG                     Enable debug output`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.run(cmd)
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.Flags()

	flags.String("backend", "", "Storage backend: json or sqlite (overrides TODO_BACKEND)")
	flags.String("data-dir", "", "Data directory (overrides TODO_DATA_DIR)")
	flags.String("data-file", "", "Data filename (overrides TODO_DATA_FILENAME)")
	flags.Int("priority-width", 0, "Priority label width in task listings (overrides TODO_DISPLAY_PRIORITY_WIDTH)")
	flags.Int("task-name-min-length", 0, "Minimum task name length (overrides TODO_VALIDATION_TASK_NAME_MIN)")
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TODO_VALIDATION_TASK_NAME_MAX)")
	flags.Bool("verbose", false, "Print the data file path at startup (overrides TODO_VERBOSE)")
}

// run wires configuration, repository, store, and menu together and
// starts the session.
func (r *RootCommand) run(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	logging.Debugf("using %s backend at %s\n", cfg.Storage.Backend, cfg.GetDataFilePath())

	st := store.New(repo)
	menu := NewMenu(st, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return menu.Run(cmd.Context())
}

// overridesFromFlags collects the configuration overrides from flags the
// user actually set.
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("data-file") {
		v, _ := flags.GetString("data-file")
		overrides.DataFilename = &v
	}
	if flags.Changed("priority-width") {
		v, _ := flags.GetInt("priority-width")
		overrides.PriorityWidth = &v
	}
	if flags.Changed("task-name-min-length") {
		v, _ := flags.GetInt("task-name-min-length")
		overrides.TaskNameMinLen = &v
	}
	if flags.Changed("task-name-max-length") {
		v, _ := flags.GetInt("task-name-max-length")
		overrides.TaskNameMaxLen = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}
