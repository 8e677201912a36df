package codebase

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dhamidi/rfparse/project"
	"github.com/dhamidi/rfparse/robot"
	"github.com/dhamidi/rfparse/robot/parser"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Codebase holds the parsed form of every Robot file below a root
// directory. Parsing happens outside the lock; a finished result replaces
// the previous one for its path as a whole.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	fs      afero.Fs
	config  project.Config
	files   map[string]*FileInfo
	cache   *lru.Cache[uint64, *robot.RobotFile]
	log     commonlog.Logger
}

type FileInfo struct {
	Path    string
	Content []byte
	Hash    uint64
	File    *robot.RobotFile
}

type Option func(*Codebase)

// WithFs replaces the operating system filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(c *Codebase) {
		c.fs = fsys
	}
}

func WithConfig(cfg project.Config) Option {
	return func(c *Codebase) {
		c.config = cfg
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(c *Codebase) {
		c.log = log
	}
}

func New(rootDir string, opts ...Option) *Codebase {
	c := &Codebase{
		rootDir: rootDir,
		config:  project.DefaultConfig(),
		files:   make(map[string]*FileInfo),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.log == nil {
		c.log = commonlog.GetLogger("rfparse.codebase")
	}
	size := c.config.CacheSize
	if size < 1 {
		size = project.DefaultConfig().CacheSize
	}
	cache, err := lru.New[uint64, *robot.RobotFile](size)
	if err != nil {
		panic(fmt.Sprintf("codebase: create cache: %v", err))
	}
	c.cache = cache
	return c
}

// FromProject opens the codebase of a discovered project.
func FromProject(proj *project.Project, opts ...Option) *Codebase {
	return New(proj.RootDir, append([]Option{WithConfig(proj.Config)}, opts...)...)
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Fs() afero.Fs {
	return c.fs
}

func (c *Codebase) Config() project.Config {
	return c.config
}

// Paths lists the Robot files below the root, honoring the configured
// extensions and excluded directories. Unreadable entries are skipped.
func (c *Codebase) Paths() []string {
	var paths []string
	afero.Walk(c.fs, c.rootDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			c.log.Debugf("walk %s: %s", path, err)
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && c.config.Excluded(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if c.config.Matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths
}

// ScanAll parses every Robot file below the root with a bounded number of
// workers. Files that cannot be read are reported together; the others
// are still parsed.
func (c *Codebase) ScanAll(ctx context.Context) error {
	paths := c.Paths()
	c.log.Infof("scanning %d files in %s", len(paths), c.rootDir)

	var (
		mu   sync.Mutex
		errs error
	)
	g, ctx := errgroup.WithContext(ctx)
	workers := c.config.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.ScanFile(path); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

func (c *Codebase) ScanFile(path string) error {
	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile parses content as the new text of path. Identical content
// seen before for the same path reuses the cached parse.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	hash := contentHash(path, content)
	file, ok := c.cache.Get(hash)
	if !ok {
		file = parser.Parse(string(content), c.parserOptions(path)...)
		c.cache.Add(hash, file)
	}
	info := &FileInfo{Path: path, Content: content, Hash: hash, File: file}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return info
}

func (c *Codebase) parserOptions(path string) []parser.Option {
	opts := []parser.Option{parser.WithFile(path)}
	if mode, forced, err := c.config.SeparatorMode(); err == nil && forced {
		opts = append(opts, parser.WithMode(mode))
	}
	return opts
}

func contentHash(path string, content []byte) uint64 {
	d := xxhash.New()
	d.WriteString(path)
	d.Write([]byte{0})
	d.Write(content)
	return d.Sum64()
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the parsed files sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Location points at a token in one file of the codebase.
type Location struct {
	Path  string
	Token *robot.Token
}

// FindKeyword returns the user keywords declared under name, compared
// after Robot normalization.
func (c *Codebase) FindKeyword(name string) []Location {
	var out []Location
	for _, f := range c.Files() {
		for _, kw := range f.File.Keywords.Keywords {
			if kw.Name.Normalized() == robot.Normalize(name) {
				out = append(out, Location{Path: f.Path, Token: kw.Name})
			}
		}
	}
	return out
}

// FindVariable returns the variables table entries declaring name.
func (c *Codebase) FindVariable(name string) []Location {
	var out []Location
	for _, f := range c.Files() {
		if v := f.File.Variables.Lookup(name); v != nil {
			out = append(out, Location{Path: f.Path, Token: v.Declaration})
		}
	}
	return out
}

// TokenAt returns the token at a 1-based line and 0-based byte column.
func (c *Codebase) TokenAt(path string, line, column int) *robot.Token {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}
	return f.File.TokenAtPosition(line, column)
}
