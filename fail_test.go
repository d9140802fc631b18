package cssreport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailReporter(t *testing.T) {
	tests := []struct {
		name    string
		reports []FileReport
		wantMsg string
	}{
		{
			name:    "no findings succeeds",
			reports: []FileReport{{Filename: "a.css"}},
		},
		{
			name: "single finding singular",
			reports: []FileReport{
				{Filename: "a.css", Messages: make([]Message, 1)},
			},
			wantMsg: "1 linting issue has been found.",
		},
		{
			name: "multiple findings pluralized",
			reports: []FileReport{
				{Filename: "a.css", Messages: make([]Message, 2)},
				{Filename: "b.css", Messages: make([]Message, 1)},
			},
			wantMsg: "3 linting issues have been found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FailReporter{}.Report(tt.reports)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrIssuesFound)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFailReporterEmptyCollection(t *testing.T) {
	require.NoError(t, FailReporter{}.Report(nil))
}
