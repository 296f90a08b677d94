package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for CLI operations.
var ErrTooManyArgs = errors.New("usage: mdsite [flags] [basepath]")

// defaultConfigFile is picked up from the working directory when
// --config is not given.
const defaultConfigFile = "site.yaml"

// run resolves configuration, builds the site, and reports the result.
// Precedence: flags over config file over built-in defaults; the one
// optional positional argument is the site base path.
func run(ctx context.Context, flags *buildFlags, args []string) error {
	if flags.version {
		fmt.Fprintf(stdout, "mdsite %s\n", Version)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: got %d positional arguments", ErrTooManyArgs, len(args))
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.BasePath = args[0]
	}

	site := mdsite.Site{
		ContentDir:   cfg.Content,
		StaticDir:    cfg.Static,
		TemplatePath: resolveTemplate(cfg.Template),
		OutputDir:    cfg.Output,
		BasePath:     mdsite.NormalizeBasePath(cfg.BasePath),
	}

	logf := func(string, ...any) {}
	if flags.verboseEnabled() {
		logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
		logf("using basepath: %s", site.BasePath)
	}

	svc := mdsite.New(
		mdsite.WithWorkers(cfg.Workers),
		mdsite.WithLogf(logf),
	)
	if err := svc.Build(ctx, site); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Generated site in %s\n", site.OutputDir)
	}
	return nil
}

// resolveConfig layers the config file (explicit path, or site.yaml if
// present) under any site flags that were set.
func resolveConfig(flags *buildFlags) (config.Config, error) {
	cfg := config.Default()

	switch {
	case flags.config != "":
		loaded, err := config.Load(flags.config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	case fileutil.FileExists(defaultConfigFile):
		loaded, err := config.Load(defaultConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.site.content != "" {
		cfg.Content = flags.site.content
	}
	if flags.site.static != "" {
		cfg.Static = flags.site.static
	}
	if flags.site.template != "" {
		cfg.Template = flags.site.template
	}
	if flags.site.output != "" {
		cfg.Output = flags.site.output
	}
	if flags.site.workers > 0 {
		cfg.Workers = flags.site.workers
	}

	return cfg, cfg.Validate()
}

// resolveTemplate maps the config template to a Site template path.
// When the default template file is simply absent, the embedded
// fallback takes over; an explicitly configured path that is missing
// stays put so the build fails loudly.
func resolveTemplate(template string) string {
	if template == config.DefaultTemplate && !fileutil.FileExists(template) {
		return ""
	}
	return template
}

// printUsage writes command usage with the flag table.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `mdsite - generate a static site from markdown content

Usage:
  mdsite [flags] [basepath]

The optional basepath argument prefixes root-relative links when the
site is served from a subdirectory (e.g. /my-site).

Flags:
%s`, fs.FlagUsages())
}

// stdout/stderr are indirected for tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)
