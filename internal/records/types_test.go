package records

import (
	"encoding/json"
	"testing"
)

func TestRecordID_DecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want RecordID
	}{
		{"integer", `{"id": 42, "data": "x"}`, "42"},
		{"string", `{"id": "65f1c0ffee", "data": "x"}`, "65f1c0ffee"},
		{"null", `{"id": null, "data": "x"}`, ""},
		{"large", `{"id": 9007199254740993, "data": "x"}`, "9007199254740993"},
		{"negative", `{"id": -3, "data": "x"}`, "-3"},
		{"trailing zero", `{"id": 1.0, "data": "x"}`, "1"},
		{"exponent", `{"id": 1e2, "data": "x"}`, "100"},
		{"fraction", `{"id": 2.50, "data": "x"}`, "2.5"},
		{"huge", `{"id": 1e21, "data": "x"}`, "1e+21"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Record
			if err := json.Unmarshal([]byte(tc.in), &r); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if r.ID != tc.want {
				t.Fatalf("ID = %q, want %q", r.ID, tc.want)
			}
		})
	}
}

func TestRecordID_RejectsObjects(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`{"id": {"x": 1}}`), &r); err == nil {
		t.Fatalf("Unmarshal returned nil error, want error for object id")
	}
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("  backend.local:8080  ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "backend.local:8080" {
		t.Fatalf("url = %q, want http://backend.local:8080", u.String())
	}

	u, err = parseBaseURL("https://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_MissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}
