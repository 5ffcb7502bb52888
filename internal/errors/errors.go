package gerr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidDateInput       = errors.New("invalid date input")
	ErrMalformedMonetaryValue = errors.New("malformed monetary value")
)

// DataAccessError is returned when the store is unreachable or a query fails.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// DataAccess wraps err into a DataAccessError, nil stays nil.
func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Op: op, Err: err}
}

// IsDataAccess reports whether err carries a DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
