package bulk

import "errors"

var (
	// ErrUnknownFormat is returned by Encode and ParseFormat for unsupported formats.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrReadInput is returned when candidates cannot be read.
	ErrReadInput = errors.New("failed to read postcodes")

	// ErrNilValidator is returned when Check is called without a validator.
	ErrNilValidator = errors.New("validator is nil")
)
