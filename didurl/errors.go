package didurl

import (
	"github.com/ghettovoice/godid/internal/constraints"
	"github.com/ghettovoice/godid/internal/errorutil"
	"github.com/ghettovoice/godid/internal/util"
)

const (
	// ErrInvalidDIDURL is returned when an input is neither a valid absolute
	// nor a valid relative DID URL. It also wraps [errorutil.ErrInvalidArgument].
	ErrInvalidDIDURL errorutil.Error = "invalid DID URL"
	// ErrInvalidDID is returned when an input does not match the DID grammar.
	// It also wraps [errorutil.ErrInvalidArgument].
	ErrInvalidDID errorutil.Error = "invalid DID"
)

// long inputs are elided in error messages
const maxErrInputLen = 128

func newInvalidDIDURLErr[T constraints.Byteseq](src T) error {
	return errorutil.NewInvalidArgumentError(errorutil.NewWrapperError( //errtrace:skip
		ErrInvalidDIDURL,
		"%q is not a valid absolute or relative DID URL", util.Ellipsis(string(src), maxErrInputLen),
	))
}

func newInvalidDIDErr[T constraints.Byteseq](src T) error {
	return errorutil.NewInvalidArgumentError(errorutil.NewWrapperError( //errtrace:skip
		ErrInvalidDID,
		"%q is not a valid DID", util.Ellipsis(string(src), maxErrInputLen),
	))
}
