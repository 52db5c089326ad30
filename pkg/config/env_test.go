package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NB_TEST_STRING", "Beijing")
	assert.Equal(t, "Beijing", GetEnvString("NB_TEST_STRING", "Shenzhen"))
	assert.Equal(t, "Shenzhen", GetEnvString("NB_TEST_STRING_UNSET", "Shenzhen"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "surrounding spaces", value: " 7 ", want: 7},
		{name: "empty uses default", value: "", want: 10},
		{name: "malformed uses default", value: "ten", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NB_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("NB_TEST_INT", 10))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("NB_TEST_FLOAT", "0.5")
	assert.InDelta(t, 0.5, GetEnvFloat("NB_TEST_FLOAT", 5), 1e-9)

	t.Setenv("NB_TEST_FLOAT", "fast")
	assert.InDelta(t, 5.0, GetEnvFloat("NB_TEST_FLOAT", 5), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "FALSE", want: false},
		{value: "0", want: false},
		{value: "yes", want: true}, // malformed, default is true
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NB_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("NB_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NB_TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("NB_TEST_DURATION", time.Second))

	t.Setenv("NB_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("NB_TEST_DURATION", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("NB_TEST_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		GetEnvStringList("NB_TEST_LIST", []string{"*"}))

	t.Setenv("NB_TEST_LIST", " , ")
	assert.Equal(t, []string{"*"}, GetEnvStringList("NB_TEST_LIST", []string{"*"}))
}

func TestValidateDurations(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))

	assert.NoError(t, ValidateNonNegativeDuration(0))
	assert.Error(t, ValidateNonNegativeDuration(-time.Second))
}

func TestValidateCronSchedule(t *testing.T) {
	tests := []struct {
		schedule string
		wantErr  bool
	}{
		{schedule: "@every 5m"},
		{schedule: "*/5 * * * *"},
		{schedule: "@hourly"},
		{schedule: "", wantErr: true},
		{schedule: "every five minutes", wantErr: true},
		{schedule: "* * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
