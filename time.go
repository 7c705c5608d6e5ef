package vault

import (
	"encoding/json"
	"time"

	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
)

// UnixTime represents a point in time as POSIX time.
// This type comes in handy when dealing with protobuf messages. Instead of
// using Go's time.Time that includes nanoseconds use primitive int64 type and
// seconds precision. Some languages do not support nanoseconds precision
// anyway.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// IsZero returns true if this time represents a zero value.
func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add modifies this UNIX time by given duration. This is compatible with
// time.Time.Add method. Any duration value smaller than a second is ignored
// as it cannot be represented by the UnixTime type.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// AsUnixTime converts given Time structure into its UNIX time representation.
// All time information more granular than a second is dropped as it cannot be
// represented by the UnixTime type.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but it is
// convenient to use a string format in configurations (ie genesis file).
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = UnixTime(unix)
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := UnixTime(stdtime.Unix())
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// String returns the usual string representation of this time as the time.Time
// structure would.
func (t UnixTime) String() string {
	return t.Time().UTC().String()
}

// UnixDuration represents a time duration with granularity of a second. This
// type should be used mostly for protobuf message declarations.
type UnixDuration int32

// AsUnixDuration converts given Duration into UnixDuration. Because of the
// UnixDuration granularity precision of sub seconds is ignored.
func AsUnixDuration(d time.Duration) UnixDuration {
	return UnixDuration(d / time.Second)
}

// Duration returns time.Duration representation of this duration.
func (d UnixDuration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// UnmarshalJSON loads JSON serialized representation into this value. JSON
// serialized value can be represented as both number of seconds and a human
// readable string with time unit as used by the time package.
func (d *UnixDuration) UnmarshalJSON(raw []byte) error {
	var secs int32
	if err := json.Unmarshal(raw, &secs); err == nil {
		*d = UnixDuration(secs)
		return nil
	}

	var stdduration string
	if err := json.Unmarshal(raw, &stdduration); err == nil {
		dur, err := time.ParseDuration(stdduration)
		if err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		*d = AsUnixDuration(dur)
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid duration format")
}

// Validate returns an error if this duration value is invalid.
func (d UnixDuration) Validate() error {
	if d < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

func (d UnixDuration) String() string {
	return d.Duration().String()
}

// InTheFuture returns true if given time is in the future compared to the
// current time as declared in the context. Context "now" should come from the
// block header.
// Keep in mind that this function is not inclusive of current time. If given
// time is equal to "now" then this function returns false.
func InTheFuture(ctx Context, t time.Time) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		// This is a programmer error.
		panic(err)
	}
	return t.After(blockNow)
}

// IsExpired returns true if given time is in the past as compared to the "now"
// as declared for the block. Expiration is inclusive, meaning that if current
// time is equal to the expiration time than this function returns true.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		// This is a programmer error.
		panic(err)
	}
	return t <= AsUnixTime(blockNow)
}
