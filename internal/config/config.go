package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"
)

type StorageConfig struct {
	Backend string `yaml:"backend" json:"backend"`
}

type Workspace struct {
	DataDir   string        `yaml:"data_dir"   json:"data_dir"`
	Theme     string        `yaml:"theme"      json:"theme"`
	Storage   StorageConfig `yaml:"storage"    json:"storage"`
	LogLevel  string        `yaml:"log_level"  json:"log_level"`
	Username  string        `yaml:"username"   json:"username"`
	CardWidth int           `yaml:"card_width" json:"card_width"`
}

type Config struct {
	Workspaces       map[string]*Workspace `yaml:"workspaces"        json:"workspaces"`
	CurrentWorkspace string                `yaml:"current_workspace" json:"current_workspace"`

	home   string     `yaml:"-"`
	active *Workspace `yaml:"-"`
}

const (
	defaultWorkspaceName = "default"
	defaultTheme         = "dark"
	defaultBackend       = "file"
	defaultLogLevel      = "info"
	defaultCardWidth     = 30
	minCardWidth         = 16
)

var validThemeNames = []string{"dark", "light"}

var validBackendNames = []string{"file", "sqlite"}

var ValidThemes = toSet(validThemeNames)

var ValidBackends = toSet(validBackendNames)

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func ValidateTheme(theme string) error {
	if ValidThemes[theme] {
		return nil
	}

	return fmt.Errorf(
		"invalid theme: %q. Please choose from %s.",
		theme,
		quotedList(validThemeNames),
	)
}

func ValidateBackend(backend string) error {
	if ValidBackends[backend] {
		return nil
	}

	return fmt.Errorf(
		"invalid storage backend: %q. Please choose from %s.",
		backend,
		quotedList(validBackendNames),
	)
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 0 {
		return ""
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// DefaultDataDir is where a workspace keeps its slots when data_dir is unset.
func DefaultDataDir(home, workspace string) string {
	return filepath.Join(home, strings.Trim(configDirName(), "/"), "data", workspace)
}

func newWorkspace() *Workspace {
	return &Workspace{
		Theme:     defaultTheme,
		Storage:   StorageConfig{Backend: defaultBackend},
		LogLevel:  defaultLogLevel,
		CardWidth: defaultCardWidth,
	}
}

func (ws *Workspace) ensureDefaults(home, name string) {
	ws.Theme = strings.ToLower(strings.TrimSpace(ws.Theme))
	if ws.Theme == "" {
		ws.Theme = defaultTheme
	}
	ws.Storage.Backend = strings.ToLower(strings.TrimSpace(ws.Storage.Backend))
	if ws.Storage.Backend == "" {
		ws.Storage.Backend = defaultBackend
	}
	if strings.TrimSpace(ws.LogLevel) == "" {
		ws.LogLevel = defaultLogLevel
	}
	if ws.CardWidth < minCardWidth {
		ws.CardWidth = defaultCardWidth
	}
	ws.DataDir = strings.TrimSpace(ws.DataDir)
	if ws.DataDir == "" && home != "" {
		ws.DataDir = DefaultDataDir(home, name)
	}
}

func (ws *Workspace) validate() error {
	if err := ValidateTheme(ws.Theme); err != nil {
		return err
	}
	return ValidateBackend(ws.Storage.Backend)
}

// Resolved returns a copy of the workspace with STARK_* environment
// overrides applied, STARK_CARD_WIDTH included. Overrides are never written
// back by Save.
func (ws *Workspace) Resolved() (Workspace, error) {
	out := *ws
	env := viper.New()
	env.SetEnvPrefix(envPrefix())
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	env.AutomaticEnv()

	if v := env.GetString("data_dir"); v != "" {
		out.DataDir = v
	}
	if v := env.GetString("theme"); v != "" {
		out.Theme = strings.ToLower(v)
	}
	if v := env.GetString("storage.backend"); v != "" {
		out.Storage.Backend = strings.ToLower(v)
	}
	if v := env.GetString("log_level"); v != "" {
		out.LogLevel = v
	}
	if env.IsSet("card_width") {
		w := env.GetInt("card_width")
		if w < minCardWidth {
			return Workspace{}, fmt.Errorf(
				"environment override: card width must be at least %d, got %q",
				minCardWidth, env.GetString("card_width"),
			)
		}
		out.CardWidth = w
	}

	if err := out.validate(); err != nil {
		return Workspace{}, fmt.Errorf("environment override: %w", err)
	}

	return out, nil
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.home = home

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return nil, err
	}

	if err := ws.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if cfg.CurrentWorkspace == "" {
		if len(cfg.Workspaces) == 0 {
			cfg.Workspaces[defaultWorkspaceName] = newWorkspace()
			cfg.CurrentWorkspace = defaultWorkspaceName
		} else {
			cfg.CurrentWorkspace = cfg.WorkspaceNames()[0]
		}
	}

	return cfg.setActiveWorkspace(cfg.CurrentWorkspace)
}

func (cfg *Config) setActiveWorkspace(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}
	ws, ok := cfg.Workspaces[name]
	if !ok {
		return fmt.Errorf("workspace %q does not exist", name)
	}
	if ws == nil {
		ws = newWorkspace()
		cfg.Workspaces[name] = ws
	}

	ws.ensureDefaults(cfg.homeDir(), name)
	cfg.CurrentWorkspace = name
	cfg.active = ws

	return nil
}

func (cfg *Config) homeDir() string {
	if cfg.home != "" {
		return cfg.home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func (cfg *Config) ActiveWorkspace() (*Workspace, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentWorkspace == "" {
		return nil, fmt.Errorf("no workspace is currently selected")
	}

	if err := cfg.setActiveWorkspace(cfg.CurrentWorkspace); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

func (cfg *Config) MustWorkspace() *Workspace {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		panic(err)
	}
	return ws
}

func (cfg *Config) WorkspaceNames() []string {
	names := make([]string, 0, len(cfg.Workspaces))
	for name := range cfg.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cfg *Config) ActivateWorkspace(name string) error {
	return cfg.setActiveWorkspace(name)
}

func (cfg *Config) SwitchWorkspace(name string) error {
	if err := cfg.setActiveWorkspace(name); err != nil {
		return err
	}
	return cfg.Save()
}

func (cfg *Config) AddWorkspace(name string, ws *Workspace, makeCurrent bool) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("workspace name cannot be empty")
	}

	if cfg.Workspaces == nil {
		cfg.Workspaces = make(map[string]*Workspace)
	}

	if _, exists := cfg.Workspaces[trimmed]; exists {
		return fmt.Errorf("workspace %q already exists", trimmed)
	}

	if ws == nil {
		ws = newWorkspace()
	}
	ws.ensureDefaults(cfg.homeDir(), trimmed)
	if err := ws.validate(); err != nil {
		return err
	}
	cfg.Workspaces[trimmed] = ws

	if cfg.CurrentWorkspace == "" || makeCurrent {
		if err := cfg.setActiveWorkspace(trimmed); err != nil {
			return err
		}
	}

	return cfg.Save()
}

func (cfg *Config) RemoveWorkspace(name string) error {
	if len(cfg.Workspaces) <= 1 {
		return fmt.Errorf("cannot remove the last workspace")
	}

	if _, exists := cfg.Workspaces[name]; !exists {
		return fmt.Errorf("workspace %q does not exist", name)
	}

	delete(cfg.Workspaces, name)

	if cfg.CurrentWorkspace == name {
		cfg.active = nil
		cfg.CurrentWorkspace = ""
		if err := cfg.ensureInitialized(); err != nil {
			return err
		}
	}

	return cfg.Save()
}

func (cfg *Config) ChangeTheme(theme string) error {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if err := ValidateTheme(theme); err != nil {
		return err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	ws.Theme = theme
	return cfg.Save()
}

// ToggleTheme flips between dark and light and returns the new theme.
func (cfg *Config) ToggleTheme() (string, error) {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return "", err
	}

	next := "light"
	if ws.Theme == "light" {
		next = "dark"
	}

	return next, cfg.ChangeTheme(next)
}

func (cfg *Config) ChangeBackend(backend string) error {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if err := ValidateBackend(backend); err != nil {
		return err
	}

	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	ws.Storage.Backend = backend
	return cfg.Save()
}

// SetUsername stores the display name shown by the login label. An empty
// name logs out.
func (cfg *Config) SetUsername(name string) error {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	ws.Username = strings.TrimSpace(name)
	return cfg.Save()
}

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.homeDir())
}

func (cfg *Config) Save() error {
	ws, err := cfg.ActiveWorkspace()
	if err != nil {
		return err
	}

	if err := ws.validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
