package mock

import (
	"context"

	"github.com/fwojciec/sensei"
)

var _ sensei.Opener = (*Opener)(nil)

// Opener is a mock implementation of sensei.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, target string) error
}

func (o *Opener) Open(ctx context.Context, target string) error {
	return o.OpenFn(ctx, target)
}

var _ sensei.URLChecker = (*URLChecker)(nil)

// URLChecker is a mock implementation of sensei.URLChecker.
type URLChecker struct {
	CheckFn func(ctx context.Context, url string) error
}

func (c *URLChecker) Check(ctx context.Context, url string) error {
	return c.CheckFn(ctx, url)
}
