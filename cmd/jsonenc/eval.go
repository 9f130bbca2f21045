package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jsonenc/gomap"
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0], exprOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputArgs(args[1:]) {
		_, docs, err := cfg.readArg(cc, arg)
		if err != nil {
			return err
		}
		results := make([]any, len(docs))
		for i, doc := range docs {
			env := make(map[string]any, len(cfg.Env)+1)
			for k, v := range cfg.Env {
				env[k] = v
			}
			env["doc"] = gomap.Plain(doc)
			results[i], err = expr.Run(prg, env)
			if err != nil {
				return fmt.Errorf("error evaluating document %d of %s: %w", i, arg, err)
			}
		}
		if err := writeDocs(cc.Out, results, cfg.encOpts(cc.Out, true)...); err != nil {
			return err
		}
	}
	return nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("getenv expects 1 argument, got %d", len(params))
			}
			name, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("getenv expects a string, got %T", params[0])
			}
			return os.Getenv(name), nil
		}),
	}
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets the dotted path key of env to the YAML value val, given
// a as key=val.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
