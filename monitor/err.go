package monitor

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	ErrCommandUnknown = errors.New(f("unknown command, try 'help'"))
	ErrCommandArgs    = errors.New(f("bad command arguments"))
	ErrBreakLine      = errors.New(f("no instruction on that line"))
)
