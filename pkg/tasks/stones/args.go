package stones

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/registry"
)

// Params are the loosely-typed arguments accepted by the registry
// adapter (e.g. from an HTTP request body).
type Params struct {
	Values []int64 `mapstructure:"values"`
	Input  string  `mapstructure:"input"` // alternative to Values: raw whitespace-separated text
	Depth  int     `mapstructure:"depth"`
}

// Solver adapts Count to the registry.SolveFunc signature. Each call
// gets a fresh in-memory store; the given options (logger, hooks) apply
// to every run.
func Solver(opts ...espalier.Option) registry.SolveFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		return solveArgs(ctx, args, opts...)
	}
}

func solveArgs(ctx context.Context, args map[string]any, opts ...espalier.Option) (any, error) {
	var params Params

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &params,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return nil, fmt.Errorf("invalid stones params: %w", err)
	}

	values := params.Values
	if len(values) == 0 && params.Input != "" {
		values, err = Parse(params.Input)
		if err != nil {
			return nil, err
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("stones: params require 'values' or 'input'")
	}
	if params.Depth < 0 {
		return nil, fmt.Errorf("stones: depth must be non-negative, got %d", params.Depth)
	}

	return Count(ctx, values, params.Depth, memory.New[Goal, int64](), opts...)
}
