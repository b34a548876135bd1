// Package report выгрузка бронирований в xlsx для администратора
package report

import (
	"fmt"
	"io"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/xuri/excelize/v2"
)

const BookingsSheet = "Bookings"

var bookingsHeader = []interface{}{"ID", "Student ID", "Tutor ID", "Date-time", "Status"}

// WriteBookingsXLSX пишет книгу с одним листом: заголовок и по строке на бронирование
func WriteBookingsXLSX(w io.Writer, bookings []*model.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BookingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(BookingsSheet, "A1", &bookingsHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, booking := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{
			booking.ID,
			booking.StudentID,
			booking.TutorID,
			booking.BookingDateTime.Format(model.BookingDateTimeLayout),
			string(booking.Status),
		}
		if err := f.SetSheetRow(BookingsSheet, cell, &row); err != nil {
			return fmt.Errorf("write booking %d: %w", booking.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
