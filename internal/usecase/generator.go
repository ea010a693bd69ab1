package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"cvgen/internal/anonymize"
	"cvgen/internal/i18n"
	"cvgen/internal/model"
	"cvgen/internal/render"
)

// Renderer prints a finished HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Translator turns a French resume into its English counterpart.
// inputPath lets implementations cache next to the source file.
type Translator interface {
	Translate(ctx context.Context, raw []byte, inputPath string) (*model.Resume, error)
}

// Options selects what a single Run produces.
type Options struct {
	Input     string // path to the resume JSON
	Output    string // explicit HTML output path; empty derives a name
	OutputDir string // directory for derived output names
	Translate bool
	Anonymize bool
	PDF       bool
}

// Generator wires the full pipeline: parse, optionally translate,
// optionally anonymize, build the document, write HTML and optionally
// print PDF.
type Generator struct {
	renderer   Renderer
	translator Translator
	anonymizer *anonymize.Anonymizer
	assembler  *render.Assembler
	theme      render.Theme
	paginator  render.Paginator
	log        *zap.Logger
	now        func() time.Time
}

func NewGenerator(
	renderer Renderer,
	translator Translator,
	anonymizer *anonymize.Anonymizer,
	assembler *render.Assembler,
	theme render.Theme,
	log *zap.Logger,
) *Generator {
	return &Generator{
		renderer:   renderer,
		translator: translator,
		anonymizer: anonymizer,
		assembler:  assembler,
		theme:      theme,
		paginator:  render.NewPaginator(),
		log:        log,
		now:        time.Now,
	}
}

// SetTranslator attaches a translator after construction. The
// translator needs credentials, so commands only build one when
// translation is actually requested.
func (g *Generator) SetTranslator(t Translator) {
	g.translator = t
}

// Run executes the pipeline for one input file. The HTML artifact is
// written before any PDF attempt, so a broken Chrome install still
// leaves a usable output on disk.
func (g *Generator) Run(ctx context.Context, opts Options) error {
	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	rec, err := model.Parse(raw)
	if err != nil {
		return err
	}

	lang := "fr"
	if opts.Translate {
		if g.translator == nil {
			return fmt.Errorf("translation requested but no translator configured")
		}
		rec, err = g.translator.Translate(ctx, raw, opts.Input)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		lang = "en"
	}

	html, err := g.render(rec, lang, opts.Anonymize)
	if err != nil {
		return err
	}

	htmlPath := opts.Output
	if htmlPath == "" {
		htmlPath = filepath.Join(opts.OutputDir, outputName(lang, opts.Anonymize))
	}
	if dir := filepath.Dir(htmlPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	g.log.Info("wrote html", zap.String("path", htmlPath))

	if !opts.PDF {
		return nil
	}
	if g.renderer == nil {
		return fmt.Errorf("pdf requested but no renderer configured")
	}
	pdf, err := g.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("render pdf (html kept at %s): %w", htmlPath, err)
	}
	pdfPath := trimExt(htmlPath) + ".pdf"
	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	g.log.Info("wrote pdf", zap.String("path", pdfPath))
	return nil
}

// RenderHTML runs the in-memory part of the pipeline on an already
// parsed record. Serve mode uses this directly.
func (g *Generator) RenderHTML(rec *model.Resume, lang string, anon bool) (string, error) {
	return g.render(rec, lang, anon)
}

// RenderPDF prints previously rendered HTML.
func (g *Generator) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if g.renderer == nil {
		return nil, fmt.Errorf("no pdf renderer configured")
	}
	return g.renderer.RenderHTMLToPDF(ctx, html)
}

func (g *Generator) render(rec *model.Resume, lang string, anon bool) (string, error) {
	if anon {
		g.anonymizer.Redact(rec)
	}
	doc := render.BuildDocument(rec, g.theme, i18n.Lookup(lang), g.now(), g.paginator)
	html, err := g.assembler.Render(doc)
	if err != nil {
		return "", err
	}
	return html, nil
}

func outputName(lang string, anon bool) string {
	name := "resume-" + lang
	if anon {
		name += "-anonymous"
	}
	return name + ".html"
}

func trimExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
