package lanetopo

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(Logf)

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("lane '%s'", "a")
	if got != "lane 'a'" {
		t.Errorf("Logged message must be %q, but got %q", "lane 'a'", got)
	}

	SetLogger(nil)
	Logf("must not panic")
}

func TestBuilderDiagnosticFallsBackToPackageLogger(t *testing.T) {
	defer SetLogger(Logf)

	calls := 0
	SetLogger(func(format string, v ...interface{}) {
		calls++
	})
	builder, err := NewBuilder(NewScene(), nil)
	if err != nil {
		t.Error(err)
		return
	}
	_, _ = builder.BuildLanes()
	if calls != 1 {
		t.Errorf("Package logger calls must be %d, but got %d", 1, calls)
	}
}
