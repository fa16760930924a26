package cctk

import (
	"errors"
	"testing"
)

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if x := s.Extend(Span{1, 4}); x != (Span{1, 5}) {
		t.Errorf("expected (1…5), have %v", x)
	}
	if x := (Span{}).Extend(s); x != s {
		t.Errorf("null span should be neutral, have %v", x)
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, have %d", s.Len())
	}
}

func TestConfigurationError(t *testing.T) {
	var err error = ConfigError("g.txt", 7, "unexpected %q", "->")
	if err.Error() != `g.txt: 7: error: unexpected "->"` {
		t.Errorf("unexpected error message %q", err.Error())
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) || cerr.Line != 7 {
		t.Errorf("expected to find configuration error for line 7")
	}
	err = &ConfigurationError{Cause: ErrMissingSource}
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("expected configuration error to wrap ErrMissingSource")
	}
}
