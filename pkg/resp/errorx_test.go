package resp

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	code, msg := StatusOf(ErrBadRequest.WithMessage("Items array is required"))
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Items array is required", msg)

	wrapped := errors.WithMessage(ErrNotFound, "list x")
	code, msg = StatusOf(wrapped)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "not found", msg)

	code, msg = StatusOf(fmt.Errorf("redis down"))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "redis down", msg)
}

func TestStatusErrorIs(t *testing.T) {
	err := errors.Wrap(ErrBadRequest.WithMessage("other text"), "decode")
	require.True(t, errors.Is(err, ErrBadRequest))
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestStatusErrorIsByMessage(t *testing.T) {
	invalidJSON := ErrBadRequest.WithMessage("invalid json")
	missingItems := ErrBadRequest.WithMessage("Items array is required")

	require.False(t, errors.Is(invalidJSON, missingItems))
	require.False(t, errors.Is(missingItems, invalidJSON))
	require.True(t, errors.Is(errors.WithMessage(missingItems, "decode"), missingItems))
	require.True(t, errors.Is(invalidJSON, ErrBadRequest))
	require.False(t, errors.Is(ErrBadRequest, invalidJSON))
	require.True(t, errors.Is(NewStatusError(http.StatusConflict, "x"), NewStatusError(http.StatusConflict, "x")))
}
