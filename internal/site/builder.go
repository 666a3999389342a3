// Package site renders every page shell against the CV document and writes
// the static site.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/Zachkp/cvsite/internal/cv"
	"github.com/Zachkp/cvsite/internal/logger"
	"github.com/Zachkp/cvsite/internal/page"
	"github.com/Zachkp/cvsite/internal/render"
	"github.com/Zachkp/cvsite/templates"
)

const documentFile = "cv.json"

type Options struct {
	Source       string
	OutputDir    string
	AssetsDir    string
	AssetExclude []string
	TemplatesDir string
	Title        string
	LoadTimeout  time.Duration
}

// Result summarises one build.
type Result struct {
	Pages    []string
	Assets   int
	Document *cv.Document
	Duration time.Duration
}

type Builder struct {
	opts   Options
	shells *shells
	ctrl   *page.Controller
	log    zerolog.Logger

	mu   sync.Mutex
	last atomic.Pointer[cv.Document]
}

// New parses the page shells, from TemplatesDir when set and the embedded
// set otherwise. Shells from TemplatesDir are parsed again on every Build.
func New(opts Options, r *render.Renderer) (*Builder, error) {
	if opts.OutputDir == "" {
		return nil, errors.New("site: output directory is required")
	}
	var fsys fs.FS = templates.FS
	if opts.TemplatesDir != "" {
		fsys = os.DirFS(opts.TemplatesDir)
	}
	sh, err := loadShells(fsys)
	if err != nil {
		return nil, err
	}
	return &Builder{
		opts:   opts,
		shells: sh,
		ctrl:   page.NewController(r),
		log:    logger.Component("site"),
	}, nil
}

// Document returns the document of the last successful build, or nil.
func (b *Builder) Document() *cv.Document {
	return b.last.Load()
}

// Build loads the document once and writes every page. When the load fails
// each page is still written with the error shown, and the *cv.LoadError is
// returned alongside the result.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()
	if b.opts.TemplatesDir != "" {
		sh, err := loadShells(os.DirFS(b.opts.TemplatesDir))
		if err != nil {
			return nil, err
		}
		b.shells = sh
	}
	if err := os.MkdirAll(b.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	doc, loadErr := cv.Load(ctx, b.opts.Source, cv.WithTimeout(b.opts.LoadTimeout))
	if loadErr != nil {
		b.log.Error().Err(loadErr).Str("source", b.opts.Source).Msg("cv document failed to load")
	}

	res := &Result{Document: doc}
	for _, file := range b.shells.pages {
		if err := b.writePage(file, doc, loadErr); err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, file)
	}
	if err := b.writeStatic(); err != nil {
		return nil, err
	}
	n, err := copyAssets(b.opts.AssetsDir, b.opts.OutputDir, b.opts.AssetExclude)
	if err != nil {
		return nil, err
	}
	res.Assets = n
	res.Duration = time.Since(start)

	if loadErr != nil {
		return res, loadErr
	}
	if err := os.WriteFile(filepath.Join(b.opts.OutputDir, documentFile), doc.Raw(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", documentFile, err)
	}
	b.last.Store(doc)

	b.log.Info().
		Int("pages", len(res.Pages)).
		Int("assets", res.Assets).
		Dur("took", res.Duration).
		Str("out", b.opts.OutputDir).
		Msg("site built")
	return res, nil
}

func (b *Builder) writePage(file string, doc *cv.Document, loadErr error) error {
	raw, err := b.shells.execute(file, ShellData{
		Title: b.opts.Title,
		Page:  pageForFile(file),
		Nav:   defaultNav,
	})
	if err != nil {
		return err
	}
	tree, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse shell %s: %w", file, err)
	}

	if loadErr != nil {
		page.ShowError(tree, loadErr)
	} else {
		id := b.ctrl.Render(tree, doc)
		if !id.Known() {
			b.log.Warn().Str("file", file).Str("page", string(id)).Msg("unknown page identifier, nothing rendered")
		}
	}

	var out bytes.Buffer
	if err := html.Render(&out, tree); err != nil {
		return fmt.Errorf("render %s: %w", file, err)
	}
	if err := os.WriteFile(filepath.Join(b.opts.OutputDir, file), out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

func (b *Builder) writeStatic() error {
	for _, name := range b.shells.static {
		data, err := fs.ReadFile(b.shells.fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(b.opts.OutputDir, name), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
