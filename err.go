package timeplus

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"reflect"
	"sync"
)

/*
Error literals describing the failure taxonomy of this package. Every
failure returned by any operation wraps exactly one of these, so callers
may branch on them via [errors.Is].
*/
var (
	ErrUnclassifiable        = mkerr("input does not belong to any known temporal category")
	ErrUnsupportedConversion = mkerr("no conversion rule for the classified category")
	ErrMalformedInput        = mkerr("text deviates from the accepted grammar")
	ErrUnknownUnit           = mkerr("symbolic unit reference did not resolve")
	ErrUnknownField          = mkerr("symbolic field reference did not resolve")
	ErrUnsupportedOperation  = mkerr("operation is not defined for the value's category")
	ErrNoTransform           = mkerr("no round-trip transform rule for the value's category")
	ErrDivisionByZero        = mkerr("division by zero")
)

/*
subsystem error envelopes.
*/
type (
	arithmeticErr struct{ e error }
	classifierErr struct{ e error }
	coercionErr   struct{ e error }
	parserErr     struct{ e error }
	registryErr   struct{ e error }
	transformErr  struct{ e error }
)

func (r arithmeticErr) Error() string { return `ARITHMETIC ERROR: ` + r.e.Error() }
func (r classifierErr) Error() string { return `CLASSIFIER ERROR: ` + r.e.Error() }
func (r coercionErr) Error() string   { return `COERCION ERROR: ` + r.e.Error() }
func (r parserErr) Error() string     { return `PARSER ERROR: ` + r.e.Error() }
func (r registryErr) Error() string   { return `REGISTRY ERROR: ` + r.e.Error() }
func (r transformErr) Error() string  { return `TRANSFORM ERROR: ` + r.e.Error() }

func (r arithmeticErr) Unwrap() error { return r.e }
func (r classifierErr) Unwrap() error { return r.e }
func (r coercionErr) Unwrap() error   { return r.e }
func (r parserErr) Unwrap() error     { return r.e }
func (r registryErr) Unwrap() error   { return r.e }
func (r transformErr) Unwrap() error  { return r.e }

/*
taggedErr couples a rendered message with the taxonomy literal it
elaborates upon, keeping [errors.Is] functional across decoration.
*/
type taggedErr struct {
	base error
	msg  string
}

func (r taggedErr) Error() string { return r.msg }
func (r taggedErr) Unwrap() error { return r.base }

func renderErrParts(parts ...any) string {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case reflect.Type:
			b.WriteString(v.String())
		case Unit:
			b.WriteString(v.String())
		case Field:
			b.WriteString(v.String())
		case variantKind:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	return b.String()
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	msg := renderErrParts(parts...)
	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}

/*
wraperrf decorates one of the package error literals with contextual
detail. The literal remains reachable through Unwrap.
*/
func wraperrf(base error, parts ...any) error {
	return taggedErr{base: base, msg: base.Error() + renderErrParts(parts...)}
}

func typeNameOf(x any) string {
	if x == nil {
		return "<nil>"
	}
	return refTypeOf(x).String()
}

func errorUnclassifiable(x any) error {
	return classifierErr{wraperrf(ErrUnclassifiable, ": ", typeNameOf(x))}
}

func errorUnsupportedConversion(k variantKind, target string) error {
	return coercionErr{wraperrf(ErrUnsupportedConversion, ": cannot convert ", k, " to ", target)}
}

func errorMalformedInput(text string, pos int) error {
	return parserErr{wraperrf(ErrMalformedInput, ": ", text, " (position ", pos, ")")}
}

func errorMalformedDuration(text string) error {
	return parserErr{wraperrf(ErrMalformedInput, ": ", text, " (ISO 8601 duration)")}
}

func errorUnknownUnit(x any) error {
	var given string
	switch tv := x.(type) {
	case string:
		given = tv
	default:
		given = typeNameOf(x)
	}
	return registryErr{wraperrf(ErrUnknownUnit, ": ", given)}
}

func errorUnknownField(x any) error {
	var given string
	switch tv := x.(type) {
	case string:
		given = tv
	default:
		given = typeNameOf(x)
	}
	return registryErr{wraperrf(ErrUnknownField, ": ", given)}
}

func errorUnsupportedOperation(op, on string) error {
	return arithmeticErr{wraperrf(ErrUnsupportedOperation, ": ", op, " on ", on)}
}

func errorNoTransform(x any) error {
	return transformErr{wraperrf(ErrNoTransform, ": ", typeNameOf(x))}
}

var errorDivisionByZero error = arithmeticErr{ErrDivisionByZero}

var errorDurationOverflow error = arithmeticErr{
	mkerr("duration magnitude exceeds the representable range"),
}

func errorBadTypeForConstructor(typeName string, x any) error {
	return coercionErr{wraperrf(ErrUnsupportedConversion,
		": invalid input type for ", typeName, " constructor: ", typeNameOf(x))}
}

func errorFieldValueOutOfRange(f Field, v int64) error {
	return arithmeticErr{mkerrf("value ", v, " out of range for field ", f)}
}
