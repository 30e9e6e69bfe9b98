// internal/builder/build.go

// Package builder coordinates whole-project builds: it discovers page
// sources, orders .mtm files by their import dependencies, compiles
// independent files concurrently, renders markdown pages, and writes every
// artifact under the output directory. A failing file is reported and
// skipped; the rest of the build completes.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"mtm/internal/compiler"
	"mtm/internal/config"
	"mtm/internal/diag"
	"mtm/internal/document"
	"mtm/internal/resolver"
	"mtm/internal/routes"
	"mtm/internal/util"
)

// Builder runs builds for one project. The cache survives across Build
// calls so serve-mode rebuilds only recompile changed files; the route
// registry and diagnostics collector are created fresh per build.
type Builder struct {
	Root   string
	Config config.ProjectConfig
	Cache  *Cache
}

// New returns a Builder rooted at the project directory.
func New(root string, cfg config.ProjectConfig) *Builder {
	cache, err := NewCache(256)
	if err != nil {
		cache = nil
	}
	return &Builder{Root: root, Config: cfg, Cache: cache}
}

// Build compiles the whole pages tree and copies static assets.
func (b *Builder) Build(opts BuildOptions) (*Report, error) {
	started := time.Now()

	pagesDir := filepath.Join(b.Root, b.Config.PagesDir)
	outputDir := filepath.Join(b.Root, b.Config.OutputDir)
	staticDir := filepath.Join(b.Root, b.Config.StaticDir)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	if opts.CleanDestination {
		fmt.Println("Cleaning destination directory...")
		entries, err := os.ReadDir(outputDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
				return nil, err
			}
		}
	}

	mtmFiles, mdFiles, err := b.discover(pagesDir)
	if err != nil {
		return nil, err
	}

	res := resolver.New(b.Root, b.Config.Paths)
	registry := routes.NewRegistry()
	collector := diag.NewCollector()

	cc := compiler.New(registry, res, compiler.Options{
		Development: opts.Development,
		Production:  opts.Production,
		Site: document.Site{
			Title:       b.Config.Title,
			Description: b.Config.Description,
			Author:      b.Config.Author,
			Lang:        b.Config.Lang,
		},
	})

	report := &Report{}
	var mu sync.Mutex

	for _, dep := range mtmFiles {
		dep.deps = collectDeps(dep.path, dep.content, res)
	}
	levels := orderByDependency(mtmFiles)

	workers := b.Config.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	for _, level := range levels {
		var wg sync.WaitGroup
		for _, path := range level {
			file := mtmFiles[path]
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				b.compileOne(file, cc, registry, collector, opts, outputDir, pagesDir, report, &mu)
			}()
		}
		wg.Wait()
	}

	for _, path := range mdFiles {
		if err := b.renderMarkdownPage(path, pagesDir, outputDir, opts, report, &mu, collector); err != nil {
			return nil, err
		}
	}

	if err := copyStaticAssets(staticDir, outputDir); err != nil {
		return nil, err
	}

	report.Errors = collector.Errors()
	report.Warnings = collector.Warnings()
	report.Duration = time.Since(started)

	for _, w := range report.Warnings {
		fmt.Println(diag.Render(w, true, true))
	}
	for _, e := range report.Errors {
		fmt.Println(diag.Render(e, false, true))
	}
	if len(report.Errors) > 0 || len(report.Warnings) > 0 {
		fmt.Println(collector.Summary())
	}

	return report, nil
}

// discover walks the pages tree and loads every compilable source.
func (b *Builder) discover(pagesDir string) (map[string]*sourceFile, []string, error) {
	mtmFiles := make(map[string]*sourceFile)
	var mdFiles []string

	err := filepath.Walk(pagesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(info.Name())
		if ext != ".mtm" && ext != ".md" {
			return nil
		}
		contentBytes, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		if !utf8.Valid(contentBytes) {
			return fmt.Errorf("source file is not valid UTF-8: %s", path)
		}
		if ext == ".md" {
			mdFiles = append(mdFiles, path)
			return nil
		}
		mtmFiles[path] = &sourceFile{path: path, content: string(contentBytes)}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return mtmFiles, mdFiles, nil
}

// compileOne compiles a single .mtm file and writes its artifacts. Fatal
// diagnostics go to the collector; the build carries on.
func (b *Builder) compileOne(file *sourceFile, cc *compiler.Compiler, registry *routes.Registry, collector *diag.Collector, opts BuildOptions, outputDir, pagesDir string, report *Report, mu *sync.Mutex) {
	hash := contentHash(file.content, opts)

	artifact, hit := b.Cache.Get(file.path, hash)
	if hit {
		// Cached artifacts skip the pipeline, but the per-build registry
		// still has to see the route claim.
		if route := artifact.Component.Frontmatter.Get("route"); route != "" {
			if err := registry.Register(route, file.path); err != nil {
				collector.AddError(err.(*diag.Diagnostic))
				return
			}
		}
	} else {
		var err error
		artifact, err = cc.Compile(file.content, file.path)
		if err != nil {
			if d, ok := err.(*diag.Diagnostic); ok {
				collector.AddError(d)
			} else {
				collector.AddError(diag.New(diag.FrontmatterValidation, file.path, 0, "%v", err))
			}
			return
		}
		b.Cache.Put(file.path, hash, artifact)
	}

	for _, w := range artifact.Warnings {
		collector.AddWarning(w)
	}

	rel, err := filepath.Rel(pagesDir, file.path)
	if err != nil {
		rel = filepath.Base(file.path)
	}
	htmlRel := htmlOutputPath(artifact.Component.Frontmatter.Get("route"), rel)
	htmlPath := filepath.Join(outputDir, htmlRel)

	// Routed pages nest as directory indexes while scripts live under js/
	// at the output root, so script and stylesheet references are prefixed
	// with the page's base href.
	base := util.ComputeBaseHref(htmlRel)
	scriptHref := ""
	if artifact.JSPath != "" {
		scriptHref = base + artifact.JSPath
	}
	site := document.Site{
		Title:       b.Config.Title,
		Description: b.Config.Description,
		Author:      b.Config.Author,
		Lang:        b.Config.Lang,
		Stylesheet:  base + "css/style.css",
	}
	html := document.Assemble(
		artifact.Component.Frontmatter, artifact.Component.Name,
		artifact.Markup, artifact.JS, scriptHref, site)

	if err := os.MkdirAll(filepath.Dir(htmlPath), 0755); err != nil {
		collector.AddError(diag.New(diag.FrontmatterValidation, file.path, 0, "cannot create output directory: %v", err))
		return
	}
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		collector.AddError(diag.New(diag.FrontmatterValidation, file.path, 0, "cannot write page: %v", err))
		return
	}

	scripts := 0
	if artifact.JSPath != "" {
		jsPath := filepath.Join(outputDir, artifact.JSPath)
		if err := os.MkdirAll(filepath.Dir(jsPath), 0755); err != nil {
			collector.AddError(diag.New(diag.FrontmatterValidation, file.path, 0, "cannot create script directory: %v", err))
			return
		}
		if err := os.WriteFile(jsPath, []byte(artifact.JS), 0644); err != nil {
			collector.AddError(diag.New(diag.FrontmatterValidation, file.path, 0, "cannot write script: %v", err))
			return
		}
		scripts = 1
	}

	mu.Lock()
	report.Pages++
	report.Scripts += scripts
	mu.Unlock()
}

// renderMarkdownPage renders one .md source into the site shell.
func (b *Builder) renderMarkdownPage(path, pagesDir, outputDir string, opts BuildOptions, report *Report, mu *sync.Mutex, collector *diag.Collector) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	meta, rendered, err := renderMarkdown(contentBytes, opts)
	if err != nil {
		collector.AddError(diag.New(diag.FrontmatterValidation, path, 0, "%v", err))
		return nil
	}
	if meta.Draft {
		return nil
	}

	rel, err := filepath.Rel(pagesDir, path)
	if err != nil {
		return err
	}
	outRel := strings.TrimSuffix(rel, ".md") + ".html"
	outPath := filepath.Join(outputDir, outRel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	site := document.Site{
		Title:       b.Config.Title,
		Description: b.Config.Description,
		Author:      b.Config.Author,
		Lang:        b.Config.Lang,
		Stylesheet:  util.ComputeBaseHref(outRel) + "css/style.css",
	}
	if meta.Author != "" {
		site.Author = meta.Author
	}

	page := document.AssemblePage(meta.Title, meta.Description, rendered, site)
	if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
		return err
	}

	mu.Lock()
	report.Pages++
	report.Markdown++
	mu.Unlock()
	return nil
}

// htmlOutputPath picks the artifact location: routed pages build directory
// indexes ("/about" -> about/index.html) so static hosting serves clean
// URLs; unrouted pages mirror their source location.
func htmlOutputPath(route, relSource string) string {
	if route != "" {
		trimmed := strings.Trim(route, "/")
		if trimmed == "" {
			return "index.html"
		}
		return filepath.Join(filepath.FromSlash(trimmed), "index.html")
	}
	return strings.TrimSuffix(relSource, ".mtm") + ".html"
}

// copyStaticAssets copies allowed static files into the output directory.
func copyStaticAssets(staticDir, outputDir string) error {
	allowedExts := map[string]bool{
		".css": true, ".js": true, ".txt": true, ".svg": true,
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
		".ico": true, ".woff": true, ".woff2": true,
	}
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(staticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !allowedExts[filepath.Ext(info.Name())] {
			return nil
		}
		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0644)
	})
}
