package binder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BindAll resolves a stream of elements concurrently, at most MaxConcurrency at a
// time. The result is index-aligned with elements; a nil entry means no binding.
// The catalog must not change while BindAll runs.
func (b *Binder) BindAll(ctx context.Context, elements []Element) ([]*Binding, error) {
	bindings := make([]*Binding, len(elements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxConcurrency)

	for i := range elements {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bindings[i] = b.Bind(elements[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return bindings, nil
}
