package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeState_Layout(t *testing.T) {
	h := NewHistory(4)
	h.SetCurrent(NewEntry("PageX", 42, ""))
	h.PushBack(NewEntry("PageY", nil, ""))

	text, err := EncodeState(h)
	if err != nil {
		t.Fatalf("EncodeState failed: %v", err)
	}

	want := "PageX|42\n1\nPageY|\n0\n"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestEncodeState_NoCurrentEntry(t *testing.T) {
	h := NewHistory(4)
	text, err := EncodeState(h)
	if err != nil {
		t.Fatalf("EncodeState failed: %v", err)
	}
	if !strings.HasPrefix(text, StateSeparator+"\n") {
		t.Errorf("expected leading separator line, got %q", text)
	}
}

func TestEncodeState_RejectsOpaqueParameter(t *testing.T) {
	h := NewHistory(4)
	h.SetCurrent(NewEntry("PageX", struct{ A int }{1}, ""))

	_, err := EncodeState(h)
	if !errors.Is(err, ErrUnsupportedParameter) {
		t.Errorf("expected ErrUnsupportedParameter, got %v", err)
	}
}

func TestParameterText(t *testing.T) {
	id := uuid.MustParse("9e107d9d-3720-4b80-8f35-74906ab0e3f1")

	cases := []struct {
		name  string
		param any
		want  string
	}{
		{"Nil", nil, ""},
		{"Text", "hello", "hello"},
		{"Character", 'q', "q"},
		{"Int", 42, "42"},
		{"Int64", int64(-7), "-7"},
		{"Uint", uint16(9), "9"},
		{"Float", 2.5, "2.5"},
		{"UUID", id, "9e107d9d-3720-4b80-8f35-74906ab0e3f1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParameterText(tc.param)
			if err != nil {
				t.Fatalf("ParameterText(%v) failed: %v", tc.param, err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("RoundTripUUID", func(t *testing.T) {
		text, _ := ParameterText(id)
		back, err := ParameterUUID(text)
		if err != nil {
			t.Fatalf("ParameterUUID failed: %v", err)
		}
		if back != id {
			t.Error("uuid did not round-trip")
		}
	})
}

func TestParseState(t *testing.T) {
	t.Run("Full Document", func(t *testing.T) {
		doc, err := ParseState("PageX|42\n2\nPageY|\nPageZ|deep\n1\nPageW|\n")
		if err != nil {
			t.Fatalf("ParseState failed: %v", err)
		}
		if doc.Current == nil || doc.Current.SourceType != "PageX" || doc.Current.Parameter != "42" {
			t.Errorf("unexpected current entry: %+v", doc.Current)
		}
		if len(doc.Back) != 2 || doc.Back[1].Parameter != "deep" {
			t.Errorf("unexpected back stack: %+v", doc.Back)
		}
		if len(doc.Forward) != 1 || doc.Forward[0].SourceType != "PageW" {
			t.Errorf("unexpected forward stack: %+v", doc.Forward)
		}
	})

	t.Run("No Current Entry", func(t *testing.T) {
		doc, err := ParseState("|\n0\n0\n")
		if err != nil {
			t.Fatalf("ParseState failed: %v", err)
		}
		if doc.Current != nil {
			t.Errorf("expected no current entry, got %+v", doc.Current)
		}
	})

	t.Run("Parameter Keeps Embedded Separators", func(t *testing.T) {
		doc, err := ParseState("PageX|a|b\n0\n0\n")
		if err != nil {
			t.Fatalf("ParseState failed: %v", err)
		}
		if doc.Current.Parameter != "a|b" {
			t.Errorf("expected split on first separator only, got %q", doc.Current.Parameter)
		}
	})

	t.Run("Structural Damage Is Fatal", func(t *testing.T) {
		for name, input := range map[string]string{
			"Empty":            "",
			"MissingCounts":    "PageX|42\n",
			"NonNumericCount":  "PageX|42\nmany\n0\n",
			"NegativeCount":    "PageX|42\n-1\n0\n",
			"TruncatedBack":    "PageX|42\n2\nPageY|\n0\n",
			"MissingSeparator": "PageX|42\n1\nPageY\n0\n",
			"MissingForward":   "PageX|42\n0\n",
			"TrailingGarbage":  "PageX|42\n0\n0\nextra|\n",
			"CurrentNoSep":     "PageX\n0\n0\n",
		} {
			t.Run(name, func(t *testing.T) {
				if _, err := ParseState(input); !errors.Is(err, ErrMalformedState) {
					t.Errorf("expected ErrMalformedState, got %v", err)
				}
			})
		}
	})
}

func TestStateDocument_EncodeRoundTrip(t *testing.T) {
	in := "PageX|42\n2\nPageY|\nPageZ|deep\n1\nPageW|\n"
	doc, err := ParseState(in)
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if out := doc.Encode(); out != in {
		t.Errorf("round trip mismatch:\n in: %q\nout: %q", in, out)
	}
}
