// internal/scpi/session_test.go
package scpi

import (
	"errors"
	"testing"

	"github.com/tamzrod/scpi-powermeter/internal/transport"
)

// ---- fake transport ----

type fakeTransport struct {
	sent    []string
	lines   []string
	sendErr error
	readErr error
	closed  bool
}

func (f *fakeTransport) Send(cmd string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, cmd)
	return nil
}

func (f *fakeTransport) ReadLine() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	if len(f.lines) == 0 {
		return "", errors.New("fake: no line queued")
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// ---- tests ----

func TestQueryError_NoError(t *testing.T) {
	tr := &fakeTransport{lines: []string{`0,"No error."`}}
	s := NewSession(tr, nil, nil)

	code, msg, err := s.QueryError()
	if err != nil {
		t.Fatalf("QueryError err=%v", err)
	}
	if code != 0 || msg != "No error." {
		t.Fatalf("got (%d, %q), want (0, \"No error.\")", code, msg)
	}
	if len(tr.sent) != 1 || tr.sent[0] != "SYST:ERR?" {
		t.Fatalf("sent %v, want one SYST:ERR?", tr.sent)
	}
}

func TestQueryError_StripsWhitespaceAndQuotes(t *testing.T) {
	tr := &fakeTransport{lines: []string{`  -224 , " Illegal parameter value "  `}}
	s := NewSession(tr, nil, nil)

	code, msg, err := s.QueryError()
	if err != nil {
		t.Fatalf("QueryError err=%v", err)
	}
	if code != -224 {
		t.Fatalf("code=%d, want -224", code)
	}
	if msg != "Illegal parameter value" {
		t.Fatalf("msg=%q", msg)
	}
}

func TestQueryError_MalformedNoComma(t *testing.T) {
	tr := &fakeTransport{lines: []string{"garbage without commas"}}
	s := NewSession(tr, nil, nil)

	_, _, err := s.QueryError()

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestQueryError_MalformedExtraFields(t *testing.T) {
	tr := &fakeTransport{lines: []string{`1,"a","b"`}}
	s := NewSession(tr, nil, nil)

	_, _, err := s.QueryError()

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestQueryError_NonIntegerCode(t *testing.T) {
	tr := &fakeTransport{lines: []string{`oops,"No error."`}}
	s := NewSession(tr, nil, nil)

	_, _, err := s.QueryError()

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestQueryError_EmptyQueueIdempotent(t *testing.T) {
	tr := &fakeTransport{}
	s := NewSession(tr, nil, nil)

	for i := 0; i < 5; i++ {
		tr.lines = []string{`+0,"No error."`}
		code, msg, err := s.QueryError()
		if err != nil {
			t.Fatalf("call %d: err=%v", i, err)
		}
		if code != 0 || msg != "No error." {
			t.Fatalf("call %d: got (%d, %q)", i, code, msg)
		}
	}
	if len(tr.sent) != 5 {
		t.Fatalf("sent %d commands, want 5", len(tr.sent))
	}
}

func TestCheckErrors_CleanQueue(t *testing.T) {
	tr := &fakeTransport{lines: []string{`0,"No error."`}}
	s := NewSession(tr, nil, nil)

	if err := s.CheckErrors(); err != nil {
		t.Fatalf("CheckErrors err=%v", err)
	}
}

func TestCheckErrors_DeviceError(t *testing.T) {
	tr := &fakeTransport{lines: []string{`-224,"Illegal parameter value"`}}
	s := NewSession(tr, nil, nil)

	err := s.CheckErrors()

	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("expected DeviceError, got %v", err)
	}
	if devErr.Report.Summary != "Illegal parameter value" {
		t.Fatalf("summary=%q", devErr.Report.Summary)
	}
	if devErr.Report.Code != -224 {
		t.Fatalf("code=%d", devErr.Report.Code)
	}
}

func TestCheckErrors_DrainsOneEntryPerCall(t *testing.T) {
	tr := &fakeTransport{lines: []string{
		`-113,"Undefined header"`,
		`-224,"Illegal parameter value"`,
		`0,"No error."`,
	}}
	s := NewSession(tr, nil, nil)

	if err := s.CheckErrors(); err == nil {
		t.Fatal("first call: expected error")
	}
	if err := s.CheckErrors(); err == nil {
		t.Fatal("second call: expected error")
	}
	if err := s.CheckErrors(); err != nil {
		t.Fatalf("third call: queue drained, got %v", err)
	}
}

func TestQuery_ReadFailureIsCommError(t *testing.T) {
	tr := &fakeTransport{readErr: errors.New("link down")}
	s := NewSession(tr, nil, nil)

	_, err := s.Query("*IDN?")

	var commErr *transport.CommError
	if !errors.As(err, &commErr) {
		t.Fatalf("expected CommError, got %v", err)
	}
	if commErr.Op != "read" {
		t.Fatalf("op=%q, want read", commErr.Op)
	}
}

func TestSend_FailureIsCommError(t *testing.T) {
	tr := &fakeTransport{sendErr: errors.New("link down")}
	s := NewSession(tr, nil, nil)

	err := s.Send("*CLS")

	var commErr *transport.CommError
	if !errors.As(err, &commErr) {
		t.Fatalf("expected CommError, got %v", err)
	}
}

func TestClose_ReleasesTransport(t *testing.T) {
	tr := &fakeTransport{}
	s := NewSession(tr, nil, nil)

	if err := s.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}
	if !tr.closed {
		t.Fatal("transport not closed")
	}
}
