package coder

import (
	"testing"

	"sutext.github.io/difio/xlog"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	if o.MaxCount != DefaultMaxCount || o.Strict || o.Logger == nil {
		t.Errorf("unexpected defaults %+v", o)
	}
	logger := xlog.NewText(xlog.LevelDebug)
	if got := NewOptions(WithLogger(logger)).Logger; got != logger {
		t.Error("WithLogger did not install the logger")
	}
	if NewOptions(WithLogger(nil)).Logger == nil {
		t.Error("nil logger was installed")
	}
}

func TestNilLoggerDecode(t *testing.T) {
	var got pair
	if err := Unmarshal([]byte{1, 0, 2}, &got, WithLogger(nil)); err != nil {
		t.Fatal(err)
	}
	if got != (pair{A: 1, B: 2}) {
		t.Errorf("got %+v", got)
	}
	if _, err := Marshal(&got, WithLogger(nil)); err != nil {
		t.Fatal(err)
	}
}
