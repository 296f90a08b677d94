package mdsite

import "strings"

// Site describes one site build: where content and assets come from
// and where the generated site goes.
type Site struct {
	ContentDir   string // markdown source tree
	StaticDir    string // static assets mirrored into the output ("" = none)
	TemplatePath string // page template ("" = embedded default)
	OutputDir    string // generated site destination (recreated each build)
	BasePath     string // site base path, e.g. "/my-site" ("" = "/")
}

// NormalizeBasePath canonicalizes a base path: a leading "/" is
// ensured, a trailing "/" is stripped (except for the root path), and
// an empty value becomes "/".
func NormalizeBasePath(basePath string) string {
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if basePath != "/" {
		basePath = strings.TrimRight(basePath, "/")
	}
	if basePath == "" {
		return "/"
	}
	return basePath
}
