package stream

import (
	stderrors "errors"

	"github.com/wutup-dev/wutup/internal/errors"
)

// Sentinel errors, matched with errors.Is. Render functions return them
// wrapped in a coded *errors.Error.
var (
	ErrContainerNotFound = stderrors.New("container not found")
	ErrNotTable          = stderrors.New("container is not a table")
	ErrInsufficientData  = stderrors.New("insufficient data")
	ErrInvalidRowCount   = stderrors.New("invalid row count")
	ErrUnknownKind       = stderrors.New("unknown table kind")
)

func containerNotFound(id string) error {
	return errors.New("E001").
		WithDetailf("no element with id %q", id).
		WithSuggestion("Create the <table> element before rendering into it").
		Wrap(ErrContainerNotFound)
}

func notTable(id, tag string) error {
	return errors.New("E002").
		WithDetailf("element %q is a <%s>, not a <table>", id, tag).
		Wrap(ErrNotTable)
}

func insufficientData(rowCount, names int) error {
	return errors.New("E003").
		WithDetailf("%d rows requested but only %d names given", rowCount, names).
		WithSuggestion("Pass more names, or use the pad or truncate names policy").
		Wrap(ErrInsufficientData)
}

func invalidRowCount(rowCount int) error {
	return errors.New("E004").
		WithDetailf("row count must not be negative, got %d", rowCount).
		Wrap(ErrInvalidRowCount)
}
