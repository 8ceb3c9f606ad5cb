// Package gen orchestrates .proto compilation and TypeScript emission.
package gen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"

	"protots/gen/ir"
	"protots/gen/provider"
	"protots/gen/sink"
	"protots/gen/typescript"
)

// Result contains generation output metadata.
type Result struct {
	// Files lists the generated output paths, in generation order.
	Files []string

	// Enums and Messages count the generated declarations.
	Enums    int
	Messages int
}

// Generate compiles the given .proto files and emits one TypeScript
// file per input through the configured output sink.
func Generate(ctx context.Context, cfg *Config, files ...string) (*Result, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no proto files given")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	out := cfg.Sink
	if out == nil {
		if cfg.OutDir == "" {
			return nil, fmt.Errorf("OutDir is required")
		}
		out = sink.NewFilesystemSink(cfg.OutDir)
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: cfg.ImportPaths,
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	compiled, err := compiler.Compile(ctx, files...)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	fds := make([]protoreflect.FileDescriptor, len(compiled))
	for i, f := range compiled {
		fds[i] = f
	}

	return generateSchema(ctx, cfg, provider.FromFiles(fds), out)
}

// generateSchema emits every file in the schema through out.
func generateSchema(ctx context.Context, cfg *Config, schema *ir.Schema, out sink.OutputSink) (*Result, error) {
	emitter := typescript.NewEmitter(cfg.emitterConfig(), provider.ResolveCatalog)

	result := &Result{}
	for _, fs := range schema.Files {
		f := emitter.EmitFile(fs)
		if err := out.WriteFile(ctx, f.Path, f.Render()); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Path, err)
		}
		slog.Debug("generated file",
			"path", f.Path,
			"enums", len(fs.Enums),
			"messages", len(fs.Messages))
		result.Files = append(result.Files, f.Path)
		result.Enums += len(fs.Enums)
		result.Messages += len(fs.Messages)
	}
	return result, nil
}
