//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"geresaco/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkVisibleToStdlibErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errs.New("NOT_FOUND: user not found")
	marked := errs.Mark(cause, errs.ErrUserNotFound)

	assert.True(t, errors.Is(marked, errs.ErrUserNotFound))
	assert.Equal(t, cause.Error(), marked.Error())
}

func TestMarkKeepsWrappedCauseInChain(t *testing.T) {
	t.Parallel()

	inner := errs.New("boom")
	wrapped := errs.Wrap(inner, "loading row")
	marked := errs.Mark(wrapped, errs.ErrInvalidField)

	assert.True(t, errors.Is(marked, errs.ErrInvalidField))
	assert.Equal(t, "loading row: boom", marked.Error())
}

func TestMarkStacksMultipleSentinels(t *testing.T) {
	t.Parallel()

	err := errs.Mark(errs.Mark(errs.New("boom"), errs.ErrInvalidInterval), errs.ErrInvalidField)

	assert.True(t, errors.Is(err, errs.ErrInvalidInterval))
	assert.True(t, errors.Is(err, errs.ErrInvalidField))
}

func TestMarkNilCauseReturnsSentinel(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, errs.Mark(nil, errs.ErrRoomNotFound), errs.ErrRoomNotFound)
}

func TestMarkFormatsCauseDetail(t *testing.T) {
	t.Parallel()

	marked := errs.Mark(errs.New("boom"), errs.ErrUserNotFound)

	assert.Contains(t, fmt.Sprintf("%+v", marked), "boom")
	assert.Equal(t, "boom", fmt.Sprintf("%v", marked))
}
