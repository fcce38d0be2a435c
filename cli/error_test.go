package cli

import (
	"testing"

	"github.com/docker/docker/errdefs"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

func TestStatusCode(t *testing.T) {
	base := errors.New("boom")
	cases := []struct {
		err      error
		expected int
	}{
		{nil, 0},
		{base, ExitFailure},
		{errdefs.System(base), ExitFailure},
		{errdefs.InvalidParameter(base), ExitInvalid},
		{errors.WithMessage(errdefs.InvalidParameter(base), "generator 10-basics"), ExitInvalid},
		{errors.WithMessage(errdefs.Forbidden(base), "generator 45-xdg-runtime-dir"), ExitForbidden},
	}
	for _, c := range cases {
		assert.Equal(t, StatusCode(c.err), c.expected, "%v", c.err)
	}
}

func TestToStatusError(t *testing.T) {
	assert.NilError(t, ToStatusError(nil))

	err := ToStatusError(errors.WithMessage(errdefs.Forbidden(errors.New("uid 0")), "generator 45-xdg-runtime-dir"))
	sterr, ok := err.(StatusError)
	assert.Assert(t, ok)
	assert.Equal(t, sterr.StatusCode, ExitForbidden)
	assert.Equal(t, sterr.Status, "generator 45-xdg-runtime-dir: uid 0")

	orig := StatusError{StatusCode: 3}
	assert.Equal(t, ToStatusError(orig), error(orig))
}
