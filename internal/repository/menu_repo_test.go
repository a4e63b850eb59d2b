package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type staticRow struct {
	err error
}

func (r staticRow) Scan(dest ...any) error {
	return r.err
}

func TestGetMenuItemMapsNoRowsToNotFound(t *testing.T) {
	_, err := getMenuItem(staticRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestGetMenuItemKeepsOtherScanErrors(t *testing.T) {
	broken := errors.New("unexpected EOF")
	_, err := getMenuItem(staticRow{err: broken})
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrMenuItemNotFound)
}
