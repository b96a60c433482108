package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date",
			input: "2026-08-30",
			want:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2026-08-30T12:30:00Z",
			want:  time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "impossible date",
			input:   "2026-13-45",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}
