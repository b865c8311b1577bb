// Package telemetry decodes the {name, value, time} payloads pushed by
// telemetry servers and builds the status line shown next to them.
package telemetry

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	KeyName  = "name"
	KeyValue = "value"
	KeyTime  = "time"

	Delimiter = " - "
)

// Message is one named reading. Any field may be empty.
type Message struct {
	Name  string
	Value string
	Time  string
}

// Parse never fails. Payloads that are not a JSON object, or that lack a
// key, leave the corresponding fields empty.
func Parse(payload string) Message {
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &object); err != nil {
		return Message{}
	}

	return Message{
		Name:  field(object[KeyName]),
		Value: field(object[KeyValue]),
		Time:  field(object[KeyTime]),
	}
}

// field renders strings verbatim and numbers/booleans as their JSON text.
// Objects, arrays and null yield "". A strict string read would yield "" for
// numbers and booleans as well; here {"name":7} names a parameter "7".
func field(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch t := v.(type) {
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// StatusLine joins the uri with whichever of name and time are present.
func StatusLine(uri, name, time string) string {
	line := uri
	if name != "" {
		line += Delimiter + name
	}
	if time != "" {
		line += Delimiter + time
	}
	return line
}
