package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/convox/logger"
)

func TestDebugfRespectsMode(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWriter("ns=test", &buf)

	Mode = Nil
	Debugf(l, "hello=%d", 1)
	if buf.Len() != 0 {
		t.Errorf("Debugf wrote output while Mode=Nil: %q", buf.String())
	}

	Mode = Debug
	Debugf(l, "hello=%d", 1)
	if !strings.Contains(buf.String(), "hello=1") {
		t.Errorf("Debugf did not write expected output while Mode=Debug: %q", buf.String())
	}
	Mode = Nil
}

func TestPerffRespectsMode(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWriter("ns=test", &buf)

	Mode = Nil
	Perff(l, "tick=%d", 1)
	if buf.Len() != 0 {
		t.Errorf("Perff wrote output while Mode=Nil: %q", buf.String())
	}

	Mode = Performance
	Perff(l, "tick=%d", 1)
	if !strings.Contains(buf.String(), "tick=1") {
		t.Errorf("Perff did not write expected output while Mode=Performance: %q", buf.String())
	}
	Mode = Nil
}

func TestMemStringFormat(t *testing.T) {
	s := MemString()
	if !strings.Contains(s, "Alloc") || !strings.Contains(s, "Sys") {
		t.Errorf("MemString() = %q, missing expected fields", s)
	}
}
