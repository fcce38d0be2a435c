package cmd

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"
)

type ctxKey struct{}

func TestBaseContext(t *testing.T) {
	cli, err := NewLlboxCli()
	assert.NilError(t, err)
	assert.Equal(t, cli.BaseContext(), context.Background())

	ctx := context.WithValue(context.Background(), ctxKey{}, "llbox")
	cli, err = NewLlboxCli(WithBaseContext(ctx))
	assert.NilError(t, err)
	assert.Equal(t, cli.BaseContext().Value(ctxKey{}), "llbox")
}
