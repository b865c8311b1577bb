package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Message
	}{
		{
			name:    "full message",
			payload: `{"name":"rpm","value":"3200","time":"12:00:01"}`,
			want:    Message{Name: "rpm", Value: "3200", Time: "12:00:01"},
		},
		{
			name:    "value only",
			payload: `{"value":"hello"}`,
			want:    Message{Value: "hello"},
		},
		{
			name:    "numeric and boolean values",
			payload: `{"name":"temp","value":21.5,"time":true}`,
			want:    Message{Name: "temp", Value: "21.5", Time: "true"},
		},
		{
			name:    "numeric name",
			payload: `{"name":7,"value":1200.5,"time":"t"}`,
			want:    Message{Name: "7", Value: "1200.5", Time: "t"},
		},
		{
			name:    "nested values are dropped",
			payload: `{"name":"x","value":{"a":1},"time":[1,2]}`,
			want:    Message{Name: "x"},
		},
		{
			name:    "null fields",
			payload: `{"name":null,"value":"v"}`,
			want:    Message{Value: "v"},
		},
		{
			name:    "plain text",
			payload: "MonitorScreen connected to ws://localhost:1234",
			want:    Message{},
		},
		{
			name:    "json array",
			payload: `["name","value"]`,
			want:    Message{},
		},
		{
			name:    "empty payload",
			payload: "",
			want:    Message{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.payload))
		})
	}
}

func TestStatusLine(t *testing.T) {
	uri := "ws://localhost:1234"

	assert.Equal(t, uri, StatusLine(uri, "", ""))
	assert.Equal(t, uri+" - rpm", StatusLine(uri, "rpm", ""))
	assert.Equal(t, uri+" - 12:00", StatusLine(uri, "", "12:00"))
	assert.Equal(t, uri+" - rpm - 12:00", StatusLine(uri, "rpm", "12:00"))
}
