package domain

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
)

func TestLinkAction_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LinkAction
		wantErr bool
	}{
		{name: "redirect", input: `"Redirect"`, want: Redirect},
		{name: "content", input: `"Content"`, want: Content},
		{name: "lowercase is rejected", input: `"redirect"`, wantErr: true},
		{name: "unknown value", input: `"Download"`, wantErr: true},
		{name: "not a string", input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got LinkAction
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}

			b, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal(%v) unexpected error: %v", got, err)
			}
			if string(b) != tt.input {
				t.Errorf("Marshal(%v) = %s, want %s", got, b, tt.input)
			}
		})
	}
}

func TestLinkAction_String(t *testing.T) {
	if Redirect.String() != "Redirect" {
		t.Errorf("Redirect.String() = %v, want Redirect", Redirect.String())
	}
	if Content.String() != "Content" {
		t.Errorf("Content.String() = %v, want Content", Content.String())
	}
	if _, err := json.Marshal(LinkAction(0)); err == nil {
		t.Error("Marshal(LinkAction(0)) expected error")
	}
}

func TestNewLinkToFetch(t *testing.T) {
	l := NewLinkToFetch("", "")
	if l.Link != "" {
		t.Errorf("Link = %q, want empty", l.Link)
	}
	if l.Label != nil {
		t.Errorf("Label = %v, want nil", *l.Label)
	}

	l = NewLinkToFetch(" http://exp.com/bla ", "nana")
	if l.Link != " http://exp.com/bla " {
		t.Errorf("Link = %q, want untrimmed input", l.Link)
	}
	if l.Label == nil || *l.Label != "nana" {
		t.Errorf("Label = %v, want nana", l.Label)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrIO, "open input", io.ErrUnexpectedEOF)
	if !errors.Is(err, ErrIO) {
		t.Errorf("errors.Is(%v, ErrIO) = false", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("errors.Is(%v, io.ErrUnexpectedEOF) = false", err)
	}

	err = Wrap(ErrTransport, "post", &StatusError{StatusCode: 502, Body: "bad gateway"})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As(%v, *StatusError) = false", err)
	}
	if se.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", se.StatusCode)
	}
	if errors.Is(err, ErrProtocolDecode) {
		t.Errorf("errors.Is(%v, ErrProtocolDecode) = true, want false", err)
	}
}
