// Package typst wraps the `typst` CLI binary as the sole compiler backend
// (spec.md §4.5, SPEC_FULL.md §4.5 and §9). There is no embeddable Go API
// for Typst, so compilation is a subprocess call with bytes on stdin and
// PDF (or Typst source passthrough) on stdout.
package typst

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/rendis/resumegen/internal/core/entity"
)

// Options configures the compiler binding.
type Options struct {
	// BinPath is the path to the typst binary (default: "typst").
	BinPath string
	// Timeout bounds a single compile call.
	Timeout time.Duration
	// FontDirs are additional directories searched for fonts, forming the
	// pinned font catalog loaded at first use.
	FontDirs []string
	// MaxConcurrent bounds simultaneous typst subprocesses (0 = unlimited).
	MaxConcurrent int
}

func (o Options) withDefaults() Options {
	if o.BinPath == "" {
		o.BinPath = "typst"
	}
	if o.Timeout == 0 {
		o.Timeout = 10 * time.Second
	}
	return o
}

// Compiler is the process-wide Typst CLI binding. It is safe for concurrent
// use: calls are bounded by an internal semaphore rather than a mutex, since
// each call spawns its own subprocess and therefore does not share state
// with concurrent siblings (spec.md §4.5).
type Compiler struct {
	opts Options
	sem  chan struct{}
}

var (
	instance     *Compiler
	instanceErr  error
	instanceOnce sync.Once
)

// Get returns the process-wide compiler instance, initializing it on first
// call. Initialization is a one-shot latch: subsequent calls reuse the same
// instance regardless of opts (spec.md §4.5 "single compiler instance").
func Get(opts Options) (*Compiler, error) {
	instanceOnce.Do(func() {
		instance, instanceErr = newCompiler(opts)
	})
	return instance, instanceErr
}

func newCompiler(opts Options) (*Compiler, error) {
	opts = opts.withDefaults()
	if _, err := exec.LookPath(opts.BinPath); err != nil {
		return nil, fmt.Errorf("typst binary not found at %q: %w", opts.BinPath, err)
	}
	var sem chan struct{}
	if opts.MaxConcurrent > 0 {
		sem = make(chan struct{}, opts.MaxConcurrent)
	}
	return &Compiler{opts: opts, sem: sem}, nil
}

// Compile renders Typst source to PDF bytes. The subprocess is given a
// fresh stdin/stdout pair per call, so no state leaks across invocations
// even though the Compiler instance itself is shared.
func (c *Compiler) Compile(ctx context.Context, source string) ([]byte, *entity.RenderError) {
	return c.run(ctx, source, "pdf")
}

// CompileSource validates that source compiles and returns it unchanged
// (format "typst" in spec.md §9: the Typst markup itself is a cacheable
// artifact distinct from the compiled PDF).
func (c *Compiler) CompileSource(ctx context.Context, source string) (string, *entity.RenderError) {
	if _, err := c.Compile(ctx, source); err != nil {
		return "", err
	}
	return source, nil
}

func (c *Compiler) run(ctx context.Context, source string, format string) ([]byte, *entity.RenderError) {
	if c.sem != nil {
		select {
		case c.sem <- struct{}{}:
			defer func() { <-c.sem }()
		case <-ctx.Done():
			return nil, entity.NewError(entity.CodeServiceUnavailable, "Compiler busy", ctx.Err().Error(), nil)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	args := c.buildArgs(format)
	cmd := exec.CommandContext(ctx, c.opts.BinPath, args...)
	cmd.Stdin = bytes.NewReader([]byte(source))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewCompilationError(stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

func (c *Compiler) buildArgs(format string) []string {
	args := make([]string, 0, 4+2*len(c.opts.FontDirs))
	args = append(args, "compile", "--format", format)
	for _, dir := range c.opts.FontDirs {
		args = append(args, "--font-path", dir)
	}
	args = append(args, "-", "-")
	return args
}

// NewCompilationError wraps a typst CLI failure as a RenderError carrying
// the compiler's diagnostic text, per spec.md §4.5 and §7.
func NewCompilationError(diagnostics string, cause error) *entity.RenderError {
	return entity.NewError(
		entity.CodeCompilationFailed,
		"Typst compilation failed",
		fmt.Sprintf("typst compile failed: %s", cause),
		map[string]any{"diagnostics": diagnostics},
	)
}
