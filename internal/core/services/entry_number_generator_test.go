package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/SscSPs/gl_ledger_service/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEntryNumberGenerator(t *testing.T) {
	entryDate := time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)
	period := domain.EntryPeriod{Year: 2024, Month: time.November}

	tests := []struct {
		name    string
		seq     int64
		seqErr  error
		want    string
		wantErr error
	}{
		{name: "next value", seq: 42, want: "JE-202411-000042"},
		{name: "counter error falls back", seqErr: assert.AnError, want: "JE-202411-000001"},
		{name: "non-positive value falls back", seq: 0, want: "JE-202411-000001"},
		{name: "exhausted period", seq: domain.MaxEntrySequence + 1, wantErr: apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEntrySequenceRepository)
			repo.On("NextSequenceValue", mock.Anything, mock.Anything, "co-1", period).Return(tt.seq, tt.seqErr).Once()
			gen := services.NewEntryNumberGenerator(repo)

			got, err := gen.NextEntryNumber(context.Background(), nil, "co-1", entryDate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
		})
	}
}
