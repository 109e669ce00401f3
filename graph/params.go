package graph

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Argument is a single query parameter: an ASCII key and its already-encoded
// value.
type Argument struct {
	Key   string
	Value string
}

// QueryContributor prepends its own key/value pairs to an outgoing request's
// query parameters, preserving whatever was already present after them.
type QueryContributor interface {
	Contribute(args []Argument) []Argument
}

// SimpleType is a value representable as a short text string per the Graph
// API's parameter encoding rules. Encoding is total and deterministic. The
// set is open: any package can add a type by implementing EncodeArg.
type SimpleType interface {
	EncodeArg() string
}

// Arg pairs a key with an encoded simple value.
func Arg(key string, value SimpleType) Argument {
	return Argument{Key: key, Value: value.EncodeArg()}
}

// encodeArgs serializes arguments in order as key=value pairs joined by "&".
// Values receive exactly the serializer's escaping, nothing more.
func encodeArgs(args []Argument) string {
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(a.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(a.Value))
	}
	return sb.String()
}

// Bool encodes as "1" or "0".
type Bool bool

func (b Bool) EncodeArg() string {
	if b {
		return "1"
	}
	return "0"
}

// Date is a calendar date. Only the date part is encoded.
type Date time.Time

func (d Date) EncodeArg() string {
	return time.Time(d).Format("2006-01-02")
}

// Timestamp is an instant. Zoned values are normalized to UTC before
// formatting; the original offset is not represented.
type Timestamp time.Time

func (ts Timestamp) EncodeArg() string {
	return time.Time(ts).UTC().Format("20060102T1504Z")
}

// Text passes through unchanged.
type Text string

func (t Text) EncodeArg() string { return string(t) }

type Int int

func (v Int) EncodeArg() string { return strconv.FormatInt(int64(v), 10) }

type Int8 int8

func (v Int8) EncodeArg() string { return strconv.FormatInt(int64(v), 10) }

type Int16 int16

func (v Int16) EncodeArg() string { return strconv.FormatInt(int64(v), 10) }

type Int32 int32

func (v Int32) EncodeArg() string { return strconv.FormatInt(int64(v), 10) }

type Int64 int64

func (v Int64) EncodeArg() string { return strconv.FormatInt(int64(v), 10) }

type Uint uint

func (v Uint) EncodeArg() string { return strconv.FormatUint(uint64(v), 10) }

type Uint8 uint8

func (v Uint8) EncodeArg() string { return strconv.FormatUint(uint64(v), 10) }

type Uint16 uint16

func (v Uint16) EncodeArg() string { return strconv.FormatUint(uint64(v), 10) }

type Uint32 uint32

func (v Uint32) EncodeArg() string { return strconv.FormatUint(uint64(v), 10) }

type Uint64 uint64

func (v Uint64) EncodeArg() string { return strconv.FormatUint(uint64(v), 10) }

type Float32 float32

func (v Float32) EncodeArg() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

type Float64 float64

func (v Float64) EncodeArg() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
