package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// represented errors are included in the final collection. This means that
// appending to a multi error result extends it and does not create layers.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case multiError:
			res = append(res, e...)
		default:
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// multiError represents a collection of errors.
type multiError []error

var _ unpacker = (multiError)(nil)

func (e multiError) Unpack() []error {
	return e
}

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return "<nil>"
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
