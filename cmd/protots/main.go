package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"protots/gen"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Compile .proto files and write TypeScript declarations."`
	Plugin  PluginCmd  `cmd:"" help:"Run as a protoc plugin (CodeGeneratorRequest on stdin)."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Protos         []string `arg:"" help:".proto files to compile."`
	Out            string   `help:"Output directory for generated files." short:"o"`
	ProtoPath      []string `help:"Import search path (repeatable)." short:"I"`
	Config         string   `help:"YAML config file." short:"c"`
	ConstEnum      bool     `help:"Emit const enum declarations."`
	NoComments     bool     `help:"Drop doc comments from the output."`
	NoTranslations bool     `help:"Skip translation table emission."`
}

func (c *GenCmd) Run() error {
	cfg := &gen.Config{}
	if c.Config != "" {
		loaded, err := gen.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	cfg.ImportPaths = append(cfg.ImportPaths, c.ProtoPath...)
	if c.ConstEnum {
		cfg.ConstEnum = true
	}
	if c.NoComments {
		cfg.NoComments = true
	}
	if c.NoTranslations {
		cfg.NoTranslations = true
	}

	result, err := gen.Generate(context.Background(), cfg, c.Protos...)
	if err != nil {
		return err
	}
	slog.Info("generation complete",
		"files", len(result.Files),
		"enums", result.Enums,
		"messages", result.Messages)
	return nil
}

type PluginCmd struct{}

func (c *PluginCmd) Run() error {
	return gen.RunPlugin(context.Background(), os.Stdin, os.Stdout)
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("protots"),
		kong.Description("Generate TypeScript declarations from protobuf schemas."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
