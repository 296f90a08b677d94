// Package mdsite generates a static website from a directory of
// markdown files.
//
// The library exposes two layers. RenderHTML converts a single
// markdown document (a restricted dialect: headings, fenced code,
// quotes, flat lists, paragraphs, with bold/italic/code/link/image
// inline spans) into an HTML string. Service builds a whole site:
// it copies static assets, discovers markdown content, renders each
// page through a template, and rewrites root-relative references to a
// configured base path.
//
// Basic usage:
//
//	svc := mdsite.New(mdsite.WithWorkers(4))
//	err := svc.Build(ctx, mdsite.Site{
//		ContentDir: "content",
//		StaticDir:  "static",
//		OutputDir:  "public",
//		BasePath:   "/my-site",
//	})
package mdsite
