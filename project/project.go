package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/rfparse/robot"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigNames are the file names searched for, in order, in every
// directory from the starting point up to the filesystem root.
var ConfigNames = []string{".rfparse.yaml", ".rfparse.yml", ".rfparse.toml"}

// WorkersEnv overrides the configured number of parse workers.
const WorkersEnv = "RFPARSE_WORKERS"

// Config is the tool configuration of one Robot Framework workspace.
type Config struct {
	// Extensions are the file suffixes parsed when scanning a directory.
	Extensions []string `yaml:"extensions" toml:"extensions"`
	// Exclude lists directory names that are never descended into.
	Exclude   []string `yaml:"exclude" toml:"exclude"`
	Workers   int      `yaml:"workers" toml:"workers"`
	CacheSize int      `yaml:"cacheSize" toml:"cacheSize"`
	// Mode is one of auto, pipe, space or tsv.
	Mode     string `yaml:"mode" toml:"mode"`
	LogLevel string `yaml:"logLevel" toml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		Extensions: []string{".robot", ".resource", ".txt", ".tsv"},
		Exclude:    []string{".git", "node_modules"},
		Workers:    4,
		CacheSize:  256,
		Mode:       "auto",
		LogLevel:   "warning",
	}
}

// Project is a workspace root together with its configuration.
type Project struct {
	RootDir string
	// ConfigFile is empty when no configuration file was found and the
	// defaults are in use.
	ConfigFile string
	Config     Config
}

// Load discovers the project for the current directory.
func Load() (*Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return LoadFrom(afero.NewOsFs(), wd)
}

// LoadFrom walks up from dir looking for a configuration file. The
// directory holding it becomes the project root; without one, dir is the
// root and the defaults apply.
func LoadFrom(fsys afero.Fs, dir string) (*Project, error) {
	dir = filepath.Clean(dir)
	proj := &Project{RootDir: dir, Config: DefaultConfig()}

	path, err := findConfig(fsys, dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(path, data, &proj.Config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		proj.RootDir = filepath.Dir(path)
		proj.ConfigFile = path
	}

	if err := proj.Config.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := proj.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", proj.ConfigFile, err)
	}
	return proj, nil
}

func findConfig(fsys afero.Fs, dir string) (string, error) {
	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			info, err := fsys.Stat(path)
			if err == nil && !info.IsDir() {
				return path, nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("stat %s: %w", path, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// decode picks the format from the file extension, TOML unless it is
// .yaml or .yml.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v", undecoded)
		}
		return nil
	}
}

func (c *Config) applyEnv(getenv func(string) string) error {
	v := getenv(WorkersEnv)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", WorkersEnv, err)
	}
	c.Workers = n
	return nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cacheSize must be at least 1, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if _, _, err := c.SeparatorMode(); err != nil {
		return err
	}
	if _, err := c.Verbosity(); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	return nil
}

// SeparatorMode translates Mode. The second result is false for auto,
// which leaves detection to the parser.
func (c *Config) SeparatorMode() (robot.SeparatorKind, bool, error) {
	switch strings.ToLower(c.Mode) {
	case "", "auto":
		return robot.TabOrDoubleSpace, false, nil
	case "space":
		return robot.TabOrDoubleSpace, true, nil
	case "pipe":
		return robot.Pipe, true, nil
	case "tsv":
		return robot.StrictTSVTab, true, nil
	}
	return 0, false, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
}

var logVerbosity = map[string]int{
	"none":     -4,
	"critical": -3,
	"error":    -2,
	"warning":  -1,
	"notice":   0,
	"info":     1,
	"debug":    2,
}

// Verbosity translates LogLevel to the verbosity scale of
// commonlog.Configure, where 0 is notice.
func (c *Config) Verbosity() (int, error) {
	if c.LogLevel == "" {
		return logVerbosity["warning"], nil
	}
	v, ok := logVerbosity[strings.ToLower(c.LogLevel)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, c.LogLevel)
	}
	return v, nil
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(c.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// Excluded reports whether a directory of that name is skipped.
func (c *Config) Excluded(dirName string) bool {
	return slices.Contains(c.Exclude, dirName)
}

// Files lists the Robot files below the project root in walk order.
func (p *Project) Files(fsys afero.Fs) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, p.RootDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != p.RootDir && p.Config.Excluded(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if p.Config.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", p.RootDir, err)
	}
	return files, nil
}
