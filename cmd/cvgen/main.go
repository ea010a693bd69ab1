package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adapterhttp "cvgen/internal/adapter/http"
	"cvgen/internal/anonymize"
	"cvgen/internal/config"
	"cvgen/internal/render"
	"cvgen/internal/usecase"
	"cvgen/pkg/ai"
	"cvgen/pkg/infrastructure"
)

var (
	flagOutput    string
	flagTranslate bool
	flagAnonymize bool
	flagPDF       bool
	flagAPIKey    string
	flagModel     string
	flagRules     string
	flagTheme     string
	flagChrome    string
	flagPort      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cvgen <resume.json>",
		Short: "Render a JSON resume as paginated HTML and PDF",
		Long: `cvgen turns a JSON Resume file into a print-ready, paginated
two-column HTML document, optionally translated to English through
Gemini, anonymized via configurable rules, and printed to PDF through
headless Chrome.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	root.Flags().StringVarP(&flagOutput, "output", "o", "", "HTML output path (default resume-<lang>[-anonymous].html)")
	root.Flags().BoolVarP(&flagTranslate, "translate", "t", false, "translate the resume to English before rendering")
	root.Flags().BoolVarP(&flagAnonymize, "anonymize", "a", false, "apply the anonymization rules")
	root.Flags().BoolVarP(&flagPDF, "pdf", "p", false, "also print the document to PDF")
	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	root.PersistentFlags().StringVar(&flagModel, "model", "", "Gemini model name")
	root.PersistentFlags().StringVar(&flagRules, "rules", "", "JSON file with anonymization rules")
	root.PersistentFlags().StringVar(&flagTheme, "theme", "", "JSON file with employer logo/color mappings")
	root.PersistentFlags().StringVar(&flagChrome, "chrome", "", "path to the Chrome binary (defaults to CHROME_PATH)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the rendering HTTP service",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serve.Flags().StringVar(&flagPort, "port", "", "listen port (defaults to PORT or 3000)")
	root.AddCommand(serve)

	return root
}

func newLogger() (*zap.Logger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func buildGenerator(cfg config.Config, log *zap.Logger) (*usecase.Generator, error) {
	rules := anonymize.DefaultRules()
	if flagRules != "" {
		var err error
		rules, err = anonymize.LoadRules(flagRules)
		if err != nil {
			return nil, err
		}
	}
	anon, err := anonymize.New(rules)
	if err != nil {
		return nil, err
	}

	asm, err := render.NewAssembler()
	if err != nil {
		return nil, err
	}

	theme := render.DefaultTheme()
	if flagTheme != "" {
		theme, err = render.LoadTheme(flagTheme)
		if err != nil {
			return nil, err
		}
	}

	chrome := flagChrome
	if chrome == "" {
		chrome = cfg.ChromePath
	}
	renderer := infrastructure.NewChromedpRenderer(chrome)

	return usecase.NewGenerator(renderer, nil, anon, asm, theme, log), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	gen, err := buildGenerator(cfg, log)
	if err != nil {
		return err
	}

	if flagTranslate {
		apiKey := flagAPIKey
		if apiKey == "" {
			apiKey = cfg.GeminiAPIKey
		}
		if apiKey == "" {
			return fmt.Errorf("translation requires a Gemini API key: pass --api-key or set GEMINI_API_KEY")
		}
		model := flagModel
		if model == "" {
			model = cfg.GeminiModel
		}
		tr, err := ai.NewGeminiTranslator(cmd.Context(), apiKey, model, log)
		if err != nil {
			return err
		}
		gen.SetTranslator(tr)
	}

	return gen.Run(cmd.Context(), usecase.Options{
		Input:     args[0],
		Output:    flagOutput,
		OutputDir: cfg.OutputDir,
		Translate: flagTranslate,
		Anonymize: flagAnonymize,
		PDF:       flagPDF,
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	gen, err := buildGenerator(cfg, log)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:   "cvgen",
		BodyLimit: 4 * 1024 * 1024,
	})
	adapterhttp.NewHandler(gen, log).Register(app)

	port := flagPort
	if port == "" {
		port = cfg.Port
	}
	log.Info("listening", zap.String("port", port))
	return app.Listen(":" + port)
}
