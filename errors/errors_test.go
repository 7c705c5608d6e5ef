package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantIs  bool
	}{
		"instance of the same root": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped root": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"deeply wrapped root": {
			kind:   ErrState,
			err:    Wrap(Wrap(ErrState, "inner"), "outer"),
			wantIs: true,
		},
		"different root": {
			kind:   ErrNotFound,
			err:    ErrState,
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("stdlib"),
			wantIs: false,
		},
		"nil kind matches nil error": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"non nil kind does not match nil error": {
			kind:   ErrNotFound,
			err:    nil,
			wantIs: false,
		},
		"multi error containing the root": {
			kind:   ErrEmpty,
			err:    Append(ErrState, Wrap(ErrEmpty, "field")),
			wantIs: true,
		},
		"multi error without the root": {
			kind:   ErrEmpty,
			err:    Append(ErrState, ErrNotFound),
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("unexpected match result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "user")
	const want = "user: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nothing must produce nil, got %+v", err)
	}

	err := Append(nil, ErrState, nil, Wrap(ErrEmpty, "name"))
	if err == nil {
		t.Fatal("want an error")
	}
	u, ok := err.(unpacker)
	if !ok {
		t.Fatalf("not an error collection: %T", err)
	}
	if n := len(u.Unpack()); n != 2 {
		t.Fatalf("want 2 errors, got %d", n)
	}

	// Appending to a collection must flatten it.
	err = Append(err, ErrNotFound)
	if n := len(err.(unpacker).Unpack()); n != 3 {
		t.Fatalf("want 3 errors, got %d", n)
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("the end")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
