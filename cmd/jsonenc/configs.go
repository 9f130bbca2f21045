package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/input"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c desc='encode compactly, without whitespace'"`
	Indent  int  `cli:"name=indent desc='pretty printing indent step'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v desc='log each processed input'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// loadOpts returns the load options for the input named arg.
func (cfg *MainConfig) loadOpts(arg string) []input.LoadOption {
	if cfg.InFormat != nil {
		return []input.LoadOption{input.LoadFormat(*cfg.InFormat)}
	}
	if f, ok := format.FromSuffix(filepath.Ext(arg)); ok {
		return []input.LoadOption{input.LoadFormat(f)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, colors bool) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Pretty(cfg.Indent)}
	if cfg.Compact {
		res = []encode.EncodeOption{encode.Compact()}
	}
	if !colors {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='print a line diff of the input and its formatting'"`

	Fmt *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file'"`

	Patch *cli.Command
}
