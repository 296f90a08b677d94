package mdsite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Service orchestrates a full site build.
type Service struct {
	cfg  serviceConfig
	logf func(format string, args ...any)
}

type serviceConfig struct {
	workers int
}

// Option customizes a Service.
type Option func(*Service)

// WithWorkers sets the number of pages generated in parallel.
// Zero or negative selects an automatic bound from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) { s.cfg.workers = n }
}

// WithLogf installs a progress logger. By default the service is
// silent.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Service) { s.logf = logf }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		logf: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build generates the whole site: the output directory is recreated,
// static assets are mirrored in, and every markdown file under the
// content directory becomes an HTML page. Page generation runs in
// parallel; documents are independent, so the first error cancels the
// remaining work and fails the build.
func (s *Service) Build(ctx context.Context, site Site) error {
	if site.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	if !fileutil.DirExists(site.ContentDir) {
		return fmt.Errorf("%w: %s", ErrContentDirNotFound, site.ContentDir)
	}

	template, embedded, err := loadTemplate(site.TemplatePath)
	if err != nil {
		return err
	}
	basePath := NormalizeBasePath(site.BasePath)

	// Clean build: stale output never survives.
	if err := os.RemoveAll(site.OutputDir); err != nil {
		return fmt.Errorf("cleaning %s: %w", site.OutputDir, err)
	}
	if err := os.MkdirAll(site.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", site.OutputDir, err)
	}

	if site.StaticDir != "" && fileutil.DirExists(site.StaticDir) {
		s.logf("copying static assets from %s to %s", site.StaticDir, site.OutputDir)
		if err := fileutil.CopyTree(site.StaticDir, site.OutputDir); err != nil {
			return fmt.Errorf("copying static assets: %w", err)
		}
	}

	// The embedded template links /index.css; ship the matching
	// stylesheet unless the static tree already provided one.
	if embedded {
		if err := writeDefaultStyle(site.OutputDir); err != nil {
			return err
		}
	}

	pages, err := findMarkdownFiles(site.ContentDir)
	if err != nil {
		return err
	}
	s.logf("found %d markdown files in %s", len(pages), site.ContentDir)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers(s.cfg.workers))

	for _, rel := range pages {
		fromPath := filepath.Join(site.ContentDir, rel)
		destPath := filepath.Join(site.OutputDir, fileutil.HTMLPath(rel))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.logf("generating %s -> %s", fromPath, destPath)
			return generatePage(fromPath, template, destPath, basePath)
		})
	}
	return g.Wait()
}

// loadTemplate returns the template text and whether the embedded
// default was used.
func loadTemplate(path string) (string, bool, error) {
	if path == "" {
		template, err := assets.Template(assets.DefaultName)
		return template, true, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", false, fmt.Errorf("reading template: %w", err)
	}
	return string(data), false, nil
}

func writeDefaultStyle(outputDir string) error {
	dest := filepath.Join(outputDir, "index.css")
	if fileutil.FileExists(dest) {
		return nil
	}

	style, err := assets.Style(assets.DefaultName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(style), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

// findMarkdownFiles returns the paths of all .md files under
// contentDir, relative to it, in deterministic order.
func findMarkdownFiles(contentDir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(contentDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", contentDir, err)
	}

	sort.Strings(files)
	return files, nil
}

// resolveWorkers picks the parallel page bound: an explicit positive
// value wins, otherwise half the available CPUs clamped to [1, 8].
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
