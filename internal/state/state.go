package state

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/stark/internal/auth"
	"github.com/Paintersrp/stark/internal/config"
	"github.com/Paintersrp/stark/internal/logging"
	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/storage"
)

type State struct {
	Config        *config.Config
	Workspace     config.Workspace
	WorkspaceName string
	Home          string
	Log           zerolog.Logger
	Store         *storage.Store
	Repo          *notes.Repository
	Session       *auth.Session
	Watcher       *storage.Watcher
	RootStatus    *RootStatus

	logCloser io.Closer
}

func NewState(workspaceOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	return NewStateAt(home, workspaceOverride)
}

// NewStateAt wires the workspace found under home.
func NewStateAt(home, workspaceOverride string) (*State, error) {
	if err := config.LoadEnvFile(home); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if workspaceOverride != "" {
		if err := cfg.ActivateWorkspace(workspaceOverride); err != nil {
			return nil, err
		}
	}

	active, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	ws, err := active.Resolved()
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.Open(config.GetConfigDir(home), ws.LogLevel)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("workspace", cfg.CurrentWorkspace).Logger()

	store, err := storage.Open(ws.Storage.Backend, ws.DataDir, log)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to open %s storage: %w", ws.Storage.Backend, err)
	}

	repo := notes.Open(store, notes.WithLogger(log), notes.WithUser(ws.Username))

	watcher, err := storage.NewWatcher(store)
	if err != nil {
		if !errors.Is(err, storage.ErrWatchUnsupported) {
			log.Warn().Err(err).Msg("external changes will not be detected")
		}
		watcher = nil
	}
	if watcher != nil {
		watcher.OnChange(func(key string) {
			log.Info().Str("slot", key).Msg("slot changed on disk")
		})
	}

	log.Debug().
		Str("backend", ws.Storage.Backend).
		Str("data_dir", ws.DataDir).
		Msg("state ready")

	return &State{
		Config:        cfg,
		Workspace:     ws,
		WorkspaceName: cfg.CurrentWorkspace,
		Home:          home,
		Log:           log,
		Store:         store,
		Repo:          repo,
		Session:       auth.NewSession(ws.Username, cfg),
		Watcher:       watcher,
		RootStatus:    &RootStatus{},
		logCloser:     closer,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the watcher, the storage backend and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logCloser = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
