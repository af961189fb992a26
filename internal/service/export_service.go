package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/xuri/excelize/v2"
)

const appointmentsSheet = "Appointments"

var appointmentHeader = []string{
	"Name", "Email", "Phone", "Service", "Date", "Time", "Status", "Message", "Received",
}

var appointmentColumnWidths = []float64{22, 28, 18, 30, 12, 8, 12, 40, 18}

type ExportService struct {
	appointments core.AppointmentRepository
}

func NewExportService(appointments core.AppointmentRepository) *ExportService {
	return &ExportService{appointments: appointments}
}

// WriteAppointments writes every appointment, newest first, as an .xlsx workbook.
func (s *ExportService) WriteAppointments(ctx context.Context, w io.Writer) error {
	f, err := appointmentsWorkbook(s.appointments.GetAll(ctx))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func appointmentsWorkbook(appts []core.Appointment) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(appointmentsSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range appointmentHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(appointmentsSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(appointmentsSheet, col, col, appointmentColumnWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(appointmentHeader), 1)
	if err := f.SetCellStyle(appointmentsSheet, "A1", lastHeader, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, a := range appts {
		received := ""
		if !a.Created.IsZero() {
			received = a.Created.Format("2006-01-02 15:04")
		}
		row := []any{a.Name, a.Email, a.Phone, a.Service, a.Date, a.Time, a.Status, a.Message, received}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(appointmentsSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(appointmentsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	return f, nil
}
