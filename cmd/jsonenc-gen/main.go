package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jsonenc/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Cmd, "jsonenc-gen").
		WithSynopsis("jsonenc-gen [opts]").
		WithDescription("Generate Encode methods for structs marked " + codegen.Directive + ".").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_jsonenc.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Verbose    bool   `cli:"name=v desc='log each generated package'"`

	Cmd *cli.Command
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if _, err := cfg.Cmd.Parse(cc, args); err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	if cfg.OutputFile != "" && cfg.Recursive {
		return fmt.Errorf("%w: cannot specify both -o and -recursive", cli.ErrUsage)
	}

	packages, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}

	for _, pkg := range packages {
		structs, err := codegen.GeneratePackage(pkg, cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
		if cfg.Verbose && len(structs) > 0 {
			log.Info("generated", "package", pkg.Name, "structs", len(structs))
		}
	}
	return nil
}
