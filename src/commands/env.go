package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gca/src"
	"gca/src/catalog"
	"gca/src/config"
	"gca/src/logging"
	"gca/src/session"
	"gca/src/store"
	"gca/src/synth"
	"gca/src/vcs"
)

// Env is everything a command needs once settings are resolved against the
// repository it runs in.
type Env struct {
	Settings src.Settings
	Root     string
	Project  *config.Project
	Logger   *zap.Logger
	Store    *store.Store
	State    *store.State
	Catalog  *catalog.Catalog
	Synth    *synth.Synthesizer
	Gateway  *vcs.Gateway
}

// NewEnv discovers the repository, applies its .gca.yaml and loads state.
func NewEnv(settings src.Settings, verbose bool) (*Env, error) {
	logger := logging.New(settings.LogLevel, verbose)

	start := settings.Repo
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", settings.Repo, err)
	}
	root, err := vcs.DiscoverRoot(start)
	if err != nil {
		return nil, err
	}

	env := &Env{Settings: settings, Root: root, Logger: logger}
	env.loadProject(start)

	env.Store = store.New(env.Settings.CounterFile, env.Settings.ConfigFile, logger)
	env.State = env.Store.Load()
	env.Catalog = session.NewCatalog(env.Store, env.State)
	if env.Project != nil {
		env.Catalog.Share(env.Project.Templates)
	}
	env.Synth = synth.New(env.Settings.DateBucket)
	env.Gateway = vcs.New(root, env.Settings.Remote, logger)

	logger.Debug("environment ready",
		zap.String("root", root),
		zap.String("remote", env.Gateway.Remote),
		zap.Bool("dateBucket", env.Settings.DateBucket))
	return env, nil
}

// loadProject applies the nearest .gca.yaml between dir and the repository
// root.
func (e *Env) loadProject(dir string) {
	project, err := config.Find(dir, e.Root)
	if errors.Is(err, config.ErrNoProjectFile) {
		return
	}
	if err != nil {
		src.PrintWarning("Ignoring project file: %v", err)
		return
	}

	e.Project = project
	if project.Remote != "" {
		e.Settings.Remote = project.Remote
	}
	if project.DateBucket != nil {
		e.Settings.DateBucket = *project.DateBucket
	}
	e.Logger.Debug("loaded project file", zap.String("path", project.Path))
}

// Sync flushes the logger. Errors from syncing stderr are expected on some
// platforms and ignored.
func (e *Env) Sync() {
	_ = e.Logger.Sync()
}
