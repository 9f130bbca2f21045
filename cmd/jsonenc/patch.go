package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/gomap"
	"github.com/signadot/jsonenc/input"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops, err := cfg.loadPatch(args[0])
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args[1:]) {
		_, docs, err := cfg.readArg(cc, arg)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			docs[i], err = applyPatch(ops, doc)
			if err != nil {
				return fmt.Errorf("error patching document %d of %s: %w", i, arg, err)
			}
		}
		if err := writeDocs(cc.Out, docs, cfg.encOpts(cc.Out, true)...); err != nil {
			return err
		}
	}
	return nil
}

// loadPatch reads the patch from the file arg, when -f is given, or from
// arg itself as JSON.
func (cfg *PatchConfig) loadPatch(arg string) (jsonpatch.Patch, error) {
	var (
		v   any
		err error
	)
	if cfg.File {
		var docs []any
		docs, err = input.LoadFile(arg)
		if err == nil && len(docs) != 1 {
			err = fmt.Errorf("expected 1 document, got %d", len(docs))
		}
		if err == nil {
			v = docs[0]
		}
	} else {
		v, err = input.LoadBytes([]byte(arg))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error loading patch: %w", cli.ErrUsage, err)
	}
	d, err := gomap.ToJSON(v)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return ops, nil
}

// applyPatch applies ops to the compact encoding of doc and loads the
// result.
func applyPatch(ops jsonpatch.Patch, doc any) (any, error) {
	d, err := gomap.ToJSON(doc, gomap.EncodeOptions(encode.Compact()))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return input.LoadBytes(out)
}
