package puzzle

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	ErrKeyUnknown      = errors.New(f("unknown key"))
	ErrVariantUnknown  = errors.New(f("unknown variant"))
	ErrSearchInvalid   = errors.New(f("search needs a register, pattern and samples"))
	ErrSearchExhausted = errors.New(f("no seed produced the pattern"))
)

// ErrVariant locates a malformed variant setting.
type ErrVariant struct {
	Name string
	Key  string
	Err  error
}

func (err *ErrVariant) Error() string {
	return f("variant %v key %v: %v", err.Name, err.Key, err.Err)
}

func (err *ErrVariant) Unwrap() error {
	return err.Err
}
