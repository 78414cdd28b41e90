// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"

	"github.com/runoshun/taskmenu/internal/domain"
	"github.com/runoshun/taskmenu/internal/infra/config"
	"github.com/runoshun/taskmenu/internal/infra/logging"
	"github.com/runoshun/taskmenu/internal/infra/memstore"
	"github.com/runoshun/taskmenu/internal/usecase"
)

// Options holds start-up settings supplied on the command line.
// Non-empty values override the configuration file.
type Options struct {
	LogOutput  io.Writer // Destination for log entries (nil = disabled)
	ConfigPath string    // Path to a TOML config file (optional)
	LogLevel   string    // Log level override
	NoColor    bool      // Disable styled output
}

// Container provides dependency injection for the application.
// It owns the single task registry of the process.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks  domain.TaskRepository
	Logger domain.Logger

	// Configuration
	Config *domain.Config
}

// New creates a new Container with an empty registry.
func New(opts Options) (*Container, error) {
	return NewWithLoader(config.NewLoader(opts.ConfigPath), opts)
}

// NewWithLoader creates a new Container whose configuration comes from loader.
// opts.ConfigPath is ignored.
func NewWithLoader(loader domain.ConfigLoader, opts Options) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.NoColor {
		off := false
		cfg.Display.Color = &off
	}

	if !logging.IsValidLevel(cfg.Log.Level) {
		return nil, fmt.Errorf("%w %q: want debug, info, warn or error", domain.ErrInvalidLogLevel, cfg.Log.Level)
	}

	logger := logging.New(opts.LogOutput, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:  memstore.New(),
		Logger: logger,
		Config: cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskRepository, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:  tasks,
		Logger: logger,
		Config: cfg,
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
// When completion logging is enabled, new tasks get a logging observer.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	uc := usecase.NewAddTask(c.Tasks, c.Logger)
	if c.Config.Notify.LogCompletions {
		uc = uc.WithObservers(func(position int, task *domain.Task) domain.Observer {
			return logging.NewCompletionObserver(c.Logger, position, task.Description)
		})
	}
	return uc
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.AddTaskUseCase(), c.Logger)
}
