package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RecordID is the opaque identifier the Record Service assigns to a record.
// Services emit it either as a JSON number or a JSON string. Strings and
// integer literals are kept verbatim; other numbers are written the way a
// JavaScript client would print them, so 1.0 becomes "1" and 1e2 "100".
type RecordID string

// String returns the id as sent by the service.
func (id RecordID) String() string {
	return string(id)
}

// UnmarshalJSON accepts numeric and string ids.
func (id *RecordID) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode record id: %w", err)
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("decode record id %s: %w", trimmed, err)
	}
	text, err := canonicalNumber(n)
	if err != nil {
		return fmt.Errorf("decode record id %s: %w", trimmed, err)
	}
	*id = RecordID(text)
	return nil
}

// canonicalNumber renders a JSON number as text for a path segment.
// Integer literals pass through so ids above 2^53 survive.
func canonicalNumber(n json.Number) (string, error) {
	raw := n.String()
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return raw, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", err
	}
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// Record mirrors one element of the /api/getdata payload.
type Record struct {
	ID   RecordID `json:"id"`
	Data string   `json:"data"`
}

// storeRequest is the /api/storedata request body.
type storeRequest struct {
	Data string `json:"data"`
}
