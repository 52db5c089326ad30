package queryparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "3", want: 3, wantOK: true},
		{in: " 12px", want: 12, wantOK: true},
		{in: "-2", want: -2, wantOK: true},
		{in: "+7", want: 7, wantOK: true},
		{in: "3.9", want: 3, wantOK: true},
		{in: "0", want: 0, wantOK: true},
		{in: "99999999999999999999999", want: maxInt, wantOK: true},
		{in: "-99999999999999999999999", want: minInt, wantOK: true},
		{in: "", wantOK: false},
		{in: "abc", wantOK: false},
		{in: "-", wantOK: false},
		{in: "x1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LeadingInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 5, IntOr("5", 1))
	assert.Equal(t, 1, IntOr("five", 1))
}
