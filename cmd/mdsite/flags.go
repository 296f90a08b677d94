package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output-verbosity flags.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// siteFlags holds the site layout flags. Empty string / zero means
// "not set"; unset flags defer to the config file and its defaults.
type siteFlags struct {
	content  string
	static   string
	template string
	output   string
	workers  int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	config  string
	version bool
}

func (f *buildFlags) verboseEnabled() bool { return f.common.verbose && !f.common.quiet }

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
}

func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown content directory")
	fs.StringVar(&f.static, "static", "", "static asset directory")
	fs.StringVar(&f.template, "template", "", "page template file")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page builds (0 = auto)")
}

// parseFlags parses command line flags and returns the positional
// arguments (at most one: the site base path).
func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("mdsite", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
