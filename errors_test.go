package zark_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zarkhq/zark"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := zark.Errorf(zark.ENOTFOUND, "record not found")
		assert.Equal(t, zark.ENOTFOUND, zark.ErrorCode(err))
	})

	t.Run("returns code for wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", zark.Errorf(zark.EINVALID, "bad input"))
		assert.Equal(t, zark.EINVALID, zark.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, zark.EINTERNAL, zark.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", zark.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()
		err := zark.Errorf(zark.ECONFLICT, "url %q already exists", "https://example.com")
		assert.Equal(t, `url "https://example.com" already exists`, zark.ErrorMessage(err))
	})

	t.Run("masks other errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", zark.ErrorMessage(errors.New("boom")))
	})
}
