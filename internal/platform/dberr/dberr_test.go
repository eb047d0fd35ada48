// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
	assert.Equal(t, dberr.ErrNotFound, dberr.Wrap(pgx.ErrNoRows, "get"))
	assert.Equal(t, dberr.ErrNotFound, dberr.Wrap(sql.ErrNoRows, "get"))

	forbidden := apperr.Forbidden("non")
	assert.Equal(t, forbidden, dberr.Wrap(forbidden, "delete"))

	err := dberr.Wrap(errors.New("disk I/O error"), "insert_content")
	assert.True(t, apperr.Is(err, apperr.CodeInternal))
	assert.Contains(t, apperr.As(err).Cause.Error(), "insert_content")
}
