package model

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		want      Entry
		wantExtra map[string]interface{}
		wantErr   bool
	}{
		{
			name: "full entry",
			data: `{"amount_ml": 250, "timestamp": "2026-08-24T09:15:02Z", "note": "morning"}`,
			want: Entry{Amount: 250, Timestamp: "2026-08-24T09:15:02Z", Note: "morning"},
		},
		{
			name: "note omitted",
			data: `{"amount_ml": 330.5, "timestamp": "2026-08-24T12:00:00Z"}`,
			want: Entry{Amount: 330.5, Timestamp: "2026-08-24T12:00:00Z"},
		},
		{
			name: "amount as string is coerced",
			data: `{"amount_ml": "450.5", "timestamp": "2026-08-24T12:00:00Z"}`,
			want: Entry{Amount: 450.5, Timestamp: "2026-08-24T12:00:00Z"},
		},
		{
			name:      "unknown fields land in extra",
			data:      `{"amount_ml": 100, "timestamp": "2026-08-24T12:00:00Z", "source": "mobile", "synced": true}`,
			want:      Entry{Amount: 100, Timestamp: "2026-08-24T12:00:00Z"},
			wantExtra: map[string]interface{}{"source": "mobile", "synced": true},
		},
		{
			name:    "non-numeric amount",
			data:    `{"amount_ml": "a lot", "timestamp": "2026-08-24T12:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "amount of wrong type",
			data:    `{"amount_ml": [250], "timestamp": "2026-08-24T12:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "timestamp of wrong type",
			data:    `{"amount_ml": 250, "timestamp": 1756000000}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			data:    `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry Entry
			err := sonic.Unmarshal([]byte(tt.data), &entry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Amount, entry.Amount)
			assert.Equal(t, tt.want.Timestamp, entry.Timestamp)
			assert.Equal(t, tt.want.Note, entry.Note)
			assert.Equal(t, tt.wantExtra, entry.Extra)
		})
	}
}

func TestEntryMarshalPreservesExtraFields(t *testing.T) {
	original := `{"amount_ml":250,"device_id":"w-17","note":"gym","timestamp":"2026-08-24T18:00:00Z"}`

	var entry Entry
	require.NoError(t, sonic.Unmarshal([]byte(original), &entry))
	require.Equal(t, map[string]interface{}{"device_id": "w-17"}, entry.Extra)

	data, err := sonic.ConfigStd.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, original, string(data))
}

func TestEntryMarshalOmitsEmptyNote(t *testing.T) {
	entry := Entry{Amount: 250, Timestamp: "2026-08-24T18:00:00Z"}

	data, err := sonic.ConfigStd.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount_ml":250,"timestamp":"2026-08-24T18:00:00Z"}`, string(data))
}

func TestNewEntryStampsTimestamp(t *testing.T) {
	loggedAt := time.Date(2026, 8, 24, 9, 15, 2, 123456789, time.UTC)
	entry := NewEntry(500, "after run", loggedAt)

	assert.Equal(t, 500.0, entry.Amount)
	assert.Equal(t, "after run", entry.Note)

	parsed, err := entry.LoggedAt()
	require.NoError(t, err)
	assert.True(t, parsed.Equal(loggedAt))
}
