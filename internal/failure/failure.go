package failure

import (
	"errors"
	"fmt"
)

// Kind is the retry class of an error produced by an external collaborator.
type Kind int

const (
	// KindPermanent needs user remediation and is never retried automatically.
	KindPermanent Kind = iota
	// KindTransient is an infrastructure hiccup expected to resolve by itself.
	KindTransient
	// KindValidation means the input itself was rejected.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindValidation:
		return "validation"
	default:
		return "permanent"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Transient(err error) error {
	return wrap(KindTransient, err)
}

func Permanent(err error) error {
	return wrap(KindPermanent, err)
}

func Validation(err error) error {
	return wrap(KindValidation, err)
}

// Validationf is a shorthand for Validation(fmt.Errorf(...)).
func Validationf(format string, args ...any) error {
	return Validation(fmt.Errorf(format, args...))
}

// KindOf returns the kind of the outermost classified error in the chain.
// Unclassified errors are permanent.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindPermanent
}

func IsTransient(err error) bool {
	return err != nil && KindOf(err) == KindTransient
}

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}
