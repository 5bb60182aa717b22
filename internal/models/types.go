package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexInt is an integer column that legacy dumps write either as a number or
// as a numeric string. null and "" decode to zero.
type FlexInt int64

// UnmarshalJSON accepts 12, "12", null and "".
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}

// Int returns the value as int.
func (n FlexInt) Int() int {
	return int(n)
}

// ObjectID is a Mongo extended-JSON object id: {"$oid": "..."}.
type ObjectID struct {
	OID string `json:"$oid"`
}

// UnmarshalJSON also accepts a bare string id.
func (o *ObjectID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return json.Unmarshal(data, &o.OID)
	}
	var raw struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.OID = raw.OID
	return nil
}

// isoLayouts are tried in order. The second accepts offsets without a colon
// ("+0000"), as written by older mongoexport versions.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
}

func parseISO(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("invalid date %q: %w", s, lastErr)
}

// Date is a Mongo extended-JSON date: {"$date": ...} where the value is an
// ISO-8601 string, epoch milliseconds or {"$numberLong": "..."}.
type Date struct {
	time.Time
}

// UnmarshalJSON decodes every shape mongoexport has produced.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var wrapper struct {
		Date json.RawMessage `json:"$date"`
	}
	value := data
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.Date) > 0 {
		value = wrapper.Date
	}

	var iso string
	if err := json.Unmarshal(value, &iso); err == nil {
		t, err := parseISO(iso)
		if err != nil {
			return err
		}
		d.Time = t.UTC()
		return nil
	}

	var long struct {
		NumberLong string `json:"$numberLong"`
	}
	if err := json.Unmarshal(value, &long); err == nil && long.NumberLong != "" {
		ms, err := strconv.ParseInt(long.NumberLong, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid $numberLong %q: %w", long.NumberLong, err)
		}
		d.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	var ms int64
	if err := json.Unmarshal(value, &ms); err != nil {
		return fmt.Errorf("invalid date %s", data)
	}
	d.Time = time.UnixMilli(ms).UTC()
	return nil
}
