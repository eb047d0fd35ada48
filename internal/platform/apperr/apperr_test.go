// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/redherring/internal/platform/apperr"
)

func TestAs_TraversesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("rate: %w", apperr.NotFound("Contenu #4"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.True(t, apperr.Is(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.Is(wrapped, apperr.CodeForbidden))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestDescribe(t *testing.T) {
	err := apperr.ValidationError("Validation échouée",
		apperr.FieldError{Field: "note", Message: "Doit être entre 0 et 10"})

	assert.Equal(t, "Validation échouée\n• note : Doit être entre 0 et 10", apperr.Describe(err))
	assert.Equal(t, "Une erreur inattendue est survenue.", apperr.Describe(errors.New("boom")))
}
