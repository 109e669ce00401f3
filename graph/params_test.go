package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTypeEncoding(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		assert.Equal(t, "1", Bool(true).EncodeArg())
		assert.Equal(t, "0", Bool(false).EncodeArg())
	})

	t.Run("date", func(t *testing.T) {
		d := Date(time.Date(2013, 1, 5, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "2013-01-05", d.EncodeArg())
	})

	t.Run("datetime", func(t *testing.T) {
		ts := Timestamp(time.Date(2013, 1, 5, 8, 30, 0, 0, time.UTC))
		assert.Equal(t, "20130105T0830Z", ts.EncodeArg())
	})

	t.Run("zoned datetime normalizes to UTC", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		zoned := time.Date(2013, 1, 5, 14, 0, 0, 0, ist) // 08:30 UTC

		assert.Equal(t, "20130105T0830Z", Timestamp(zoned).EncodeArg())
		assert.Equal(t, Timestamp(zoned.UTC()).EncodeArg(), Timestamp(zoned).EncodeArg())
	})

	t.Run("numerics", func(t *testing.T) {
		cases := []struct {
			name  string
			value SimpleType
			want  string
		}{
			{"int", Int(-5), "-5"},
			{"int8", Int8(127), "127"},
			{"int16", Int16(-32768), "-32768"},
			{"int32", Int32(42), "42"},
			{"int64", Int64(1234567890123), "1234567890123"},
			{"uint", Uint(5), "5"},
			{"uint8", Uint8(255), "255"},
			{"uint16", Uint16(65535), "65535"},
			{"uint32", Uint32(7), "7"},
			{"uint64", Uint64(18446744073709551615), "18446744073709551615"},
			{"float32", Float32(1.5), "1.5"},
			{"float64", Float64(8.25), "8.25"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, tc.value.EncodeArg())
			})
		}
	})

	t.Run("text passes through", func(t *testing.T) {
		assert.Equal(t, "hello world", Text("hello world").EncodeArg())
		assert.Equal(t, "", Text("").EncodeArg())
	})

	t.Run("deterministic", func(t *testing.T) {
		ts := Timestamp(time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, ts.EncodeArg(), ts.EncodeArg())
	})
}

func TestArg(t *testing.T) {
	got := Arg("installed", Bool(true))
	assert.Equal(t, Argument{Key: "installed", Value: "1"}, got)
}

func TestEncodeArgs(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		raw := encodeArgs([]Argument{
			{Key: "b", Value: "2"},
			{Key: "a", Value: "1"},
		})
		assert.Equal(t, "b=2&a=1", raw)
	})

	t.Run("escapes values", func(t *testing.T) {
		raw := encodeArgs([]Argument{{Key: "q", Value: "a b&c"}})
		assert.Equal(t, "q=a+b%26c", raw)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", encodeArgs(nil))
	})
}
