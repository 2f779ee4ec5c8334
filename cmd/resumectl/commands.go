package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/rendis/resumegen/internal/core/cache"
	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/orchestrator"
	"github.com/rendis/resumegen/internal/core/registry"
	"github.com/rendis/resumegen/internal/core/sample"
	"github.com/rendis/resumegen/internal/core/typst"
	"github.com/rendis/resumegen/internal/infra/config"
)

// engine bundles the components a CLI command needs, built fresh per
// invocation (no long-lived process, unlike the server).
type engine struct {
	registry *registry.Registry
	orch     *orchestrator.Orchestrator
}

func newEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	reg := registry.New()

	compiler, err := typst.Get(typst.Options{
		BinPath:       cfg.Typst.BinPath,
		Timeout:       cfg.Typst.TimeoutDuration(),
		FontDirs:      cfg.Typst.FontDirs,
		MaxConcurrent: cfg.Typst.MaxConcurrent,
	})
	if err != nil {
		return nil, fmt.Errorf("typst compiler: %w", err)
	}

	// The CLI runs one request at a time and exits; a cache built without a
	// Redis client starts disabled (every get misses, every set is a no-op),
	// which avoids requiring Redis for a one-shot invocation while reusing the
	// exact same render pipeline as the server.
	c, err := cache.New(nil)
	if err != nil {
		return nil, err
	}

	return &engine{registry: reg, orch: orchestrator.New(reg, compiler, c, nil)}, nil
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "render a document from a JSON or YAML input file",
		ArgsUsage: "{doc_type} {template} {input.json|.yaml} {output.pdf}",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "pdf", Usage: "pdf, typst, or docx"},
			&cli.BoolFlag{Name: "ultra-validation", Usage: "run the stricter validator"},
			&cli.StringFlag{Name: "spacing-mode", Value: string(entity.SpacingCompact)},
		},
		Action: runGenerate,
	}
}

func runGenerate(cctx *cli.Context) error {
	if cctx.NArg() != 4 {
		return cli.Exit("usage: resumectl generate {doc_type} {template} {input.json|.yaml} {output.pdf}", exitInvalidArguments)
	}
	docType := entity.DocumentType(cctx.Args().Get(0))
	template := cctx.Args().Get(1)
	inputPath := cctx.Args().Get(2)
	outputPath := cctx.Args().Get(3)

	data, err := readInputFile(inputPath)
	if err != nil {
		return cli.Exit(err, exitInvalidArguments)
	}

	e, err := newEngine()
	if err != nil {
		return cli.Exit(err, exitOther)
	}

	req := entity.DocumentRequest{
		DocumentType:    docType,
		Template:        template,
		Format:          entity.Format(cctx.String("format")),
		Data:            data,
		UltraValidation: cctx.Bool("ultra-validation"),
		SpacingMode:     entity.SpacingMode(cctx.String("spacing-mode")),
	}

	result, renderErr := e.orch.Render(context.Background(), req)
	if renderErr != nil {
		return cli.Exit(renderErr.Message, exitCodeForError(renderErr))
	}

	var out []byte
	switch result.Artifact.Format {
	case entity.FormatTypst:
		out = []byte(result.Artifact.TypstSource)
	default:
		out = result.Artifact.Bytes
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return cli.Exit(err, exitOther)
	}
	fmt.Fprintf(cctx.App.Writer, "wrote %s\n", outputPath)
	return nil
}

// exitCodeForError maps a RenderError's category to the spec.md §6 exit
// codes (distinct from the HTTP status mapping in entity.RenderError.HTTPStatus).
func exitCodeForError(err *entity.RenderError) int {
	switch err.Category {
	case entity.CategoryValidation:
		return exitValidationError
	case entity.CategoryTemplate:
		if err.Code == entity.CodeTemplateNotFound {
			return exitTemplateNotFound
		}
		return exitCompilationError
	default:
		return exitOther
	}
}

func readInputFile(path string) (entity.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var data map[string]any
	if strings.EqualFold(filepath.Ext(path), ".yaml") || strings.EqualFold(filepath.Ext(path), ".yml") {
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return data, nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list every registered (document_type, template) pair",
		Action: func(cctx *cli.Context) error {
			e, err := newEngine()
			if err != nil {
				return cli.Exit(err, exitOther)
			}
			for docType, names := range e.registry.List("") {
				for _, name := range names {
					fmt.Fprintf(cctx.App.Writer, "%s\t%s\n", docType, name)
				}
			}
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "show a template's metadata",
		ArgsUsage: "{doc_type} {template}",
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() != 2 {
				return cli.Exit("usage: resumectl info {doc_type} {template}", exitInvalidArguments)
			}
			docType := entity.DocumentType(cctx.Args().Get(0))
			template := cctx.Args().Get(1)

			e, err := newEngine()
			if err != nil {
				return cli.Exit(err, exitOther)
			}
			info, ok := e.registry.Get(docType, template)
			if !ok {
				return cli.Exit(fmt.Sprintf("template not found: %s/%s", docType, template), exitTemplateNotFound)
			}
			enc := json.NewEncoder(cctx.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

func sampleCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample",
		Usage:     "write an example payload for a document type",
		ArgsUsage: "{doc_type} {out_file}",
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() != 2 {
				return cli.Exit("usage: resumectl sample {doc_type} {out_file}", exitInvalidArguments)
			}
			docType := entity.DocumentType(cctx.Args().Get(0))
			outPath := cctx.Args().Get(1)

			data := sample.Data(docType)
			if data == nil {
				return cli.Exit(fmt.Sprintf("no sample data for document type: %s", docType), exitTemplateNotFound)
			}
			raw, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return cli.Exit(err, exitOther)
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return cli.Exit(err, exitOther)
			}
			fmt.Fprintf(cctx.App.Writer, "wrote %s\n", outPath)
			return nil
		},
	}
}
