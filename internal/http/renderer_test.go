package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"date only", "2026-08-31", "Aug 31, 2026"},
		{"date and time", "2026-08-31 14:05:09", "Aug 31, 2026"},
		{"rfc3339", "2026-08-31T14:05:09Z", "Aug 31, 2026"},
		{"unparseable passes through", "last Tuesday", "last Tuesday"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDate(tt.value))
		})
	}
}
