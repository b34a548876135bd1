package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"   // Ожидает ответа репетитора
	BookingStatusConfirmed BookingStatus = "CONFIRMED" // Подтверждено
	BookingStatusRejected  BookingStatus = "REJECTED"  // Отклонено репетитором
	BookingStatusCancelled BookingStatus = "CANCELLED" // Отменено
	BookingStatusCompleted BookingStatus = "COMPLETED" // Завершено
)

// BookingStatuses все известные статусы в порядке жизненного цикла
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusRejected,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// Valid проверяет что статус входит в перечисление
func (s BookingStatus) Valid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseBookingStatus разбирает статус без учёта регистра
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
	return status, nil
}

type Booking struct {
	ID              int64         `json:"id"`
	StudentID       int64         `json:"studentId"`
	TutorID         int64         `json:"tutorId"`
	BookingDateTime time.Time     `json:"bookingDateTime"`
	Status          BookingStatus `json:"status"`

	// Заполняются при создании и в списках (JOIN), пароли вырезаны
	Student *Student `json:"student,omitempty"`
	Tutor   *Tutor   `json:"tutor,omitempty"`
}

// BookingDateTimeLayout формат даты-времени в JSON: локальное время без зоны
const BookingDateTimeLayout = "2006-01-02T15:04:05"

// bookingDateTimeLayouts ISO-8601 локальное время; смещение и Z не принимаются,
// так как booking_date_time хранится как TIMESTAMP без зоны
var bookingDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	BookingDateTimeLayout,
	"2006-01-02T15:04",
}

// ParseBookingDateTime разбирает дату-время бронирования.
// Кавычки вокруг значения допускаются: клиент присылает тело как text/plain.
func ParseBookingDateTime(raw string) (time.Time, error) {
	value := strings.Trim(strings.TrimSpace(raw), `"`)

	for _, layout := range bookingDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse %q as ISO-8601 local date-time", raw)
}

// bookingJSON Booking с датой-временем в виде строки без зоны
type bookingJSON struct {
	ID              int64         `json:"id"`
	StudentID       int64         `json:"studentId"`
	TutorID         int64         `json:"tutorId"`
	BookingDateTime string        `json:"bookingDateTime"`
	Status          BookingStatus `json:"status"`
	Student         *Student      `json:"student,omitempty"`
	Tutor           *Tutor        `json:"tutor,omitempty"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookingJSON{
		ID:              b.ID,
		StudentID:       b.StudentID,
		TutorID:         b.TutorID,
		BookingDateTime: b.BookingDateTime.Format(BookingDateTimeLayout),
		Status:          b.Status,
		Student:         b.Student,
		Tutor:           b.Tutor,
	})
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw bookingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	at, err := ParseBookingDateTime(raw.BookingDateTime)
	if err != nil {
		return err
	}

	*b = Booking{
		ID:              raw.ID,
		StudentID:       raw.StudentID,
		TutorID:         raw.TutorID,
		BookingDateTime: at,
		Status:          raw.Status,
		Student:         raw.Student,
		Tutor:           raw.Tutor,
	}
	return nil
}
