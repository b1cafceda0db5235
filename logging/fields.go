package logging

import (
	"time"

	"github.com/uplinehq/upline/libs/num"

	"go.uber.org/zap"
)

// Field aliases the underlying zap field type so that packages only ever
// import logging.
type Field = zap.Field

// String constructs a field with the given key and value.
func String(key, val string) Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and slice of values.
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) Field {
	return zap.Uint64(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Time constructs a field with the given key and value.
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Decimal constructs a field with the given key and the decimal rendered as
// a string.
func Decimal(key string, val num.Decimal) Field {
	return zap.String(key, val.String())
}

// Error constructs a field with the default error key.
func Error(err error) Field {
	return zap.Error(err)
}
