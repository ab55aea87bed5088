package timeplus

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr     func(string) error                    = errors.New
	itoa      func(int) string                      = strconv.Itoa
	atoi      func(string) (int, error)             = strconv.Atoi
	fmtInt    func(int64, int) string               = strconv.FormatInt
	pint      func(string, int, int) (int64, error) = strconv.ParseInt
	lc        func(string) string                   = strings.ToLower
	hasPfx    func(string, string) bool             = strings.HasPrefix
	hasSfx    func(string, string) bool             = strings.HasSuffix
	trimPfx   func(string, string) string           = strings.TrimPrefix
	trimS     func(string) string                   = strings.TrimSpace
	stridxb   func(string, byte) int                = strings.IndexByte
	refTypeOf func(any) reflect.Type                = reflect.TypeOf
	newBigInt func(int64) *big.Int                  = big.NewInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
floorDiv returns the largest integer quotient q such that q*b <= a,
rounding toward negative infinity rather than zero.
*/
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

/*
floorMod returns the remainder of a/b bearing the sign of b.
*/
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

/*
isNilAny reports whether x is an untyped nil or a typed nil pointer.
*/
func isNilAny(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

/*
pow10 returns 10^n for n in [0,9].
*/
func pow10(n int) int64 {
	var p int64 = 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
