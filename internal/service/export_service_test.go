package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportService_WriteAppointments(t *testing.T) {
	ctx := context.Background()
	repos := setupRepos(t)
	booking := NewBookingService(repos.appointments, nil, nil, zap.NewNop())

	first := validAppointment()
	first.Name = "First Patient"
	_, err := booking.Book(ctx, first)
	require.NoError(t, err)

	second := validAppointment()
	second.Name = "Second Patient"
	second.Message = "Left knee"
	_, err = booking.Book(ctx, second)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(repos.appointments).WriteAppointments(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{appointmentsSheet}, f.GetSheetList())

	rows, err := f.GetRows(appointmentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, appointmentHeader, rows[0])
	assert.Equal(t, "Second Patient", rows[1][0])
	assert.Equal(t, "Left knee", rows[1][7])
	assert.Equal(t, "pending", rows[1][6])
	assert.Equal(t, "First Patient", rows[2][0])
}
