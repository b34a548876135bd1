package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
)

// maxMessageLen запас до лимита Telegram в 4096 символов
const maxMessageLen = 4000

var ErrInvalidCommand = errors.New("invalid command arguments")

// BookingStatusDisplay представляет отображение статуса бронирования
type BookingStatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay возвращает emoji и текст для статуса бронирования
func GetBookingStatusDisplay(status model.BookingStatus) BookingStatusDisplay {
	displays := map[model.BookingStatus]BookingStatusDisplay{
		model.BookingStatusPending:   {"⏳", "Pending"},
		model.BookingStatusConfirmed: {"✅", "Confirmed"},
		model.BookingStatusRejected:  {"🚫", "Rejected"},
		model.BookingStatusCancelled: {"❌", "Cancelled"},
		model.BookingStatusCompleted: {"✔️", "Completed"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return BookingStatusDisplay{"❓", "Unknown"}
}

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return "❌ Usage: /setstatus <id> <STATUS> or /deletebooking <id>"
	case errors.Is(err, service.ErrBookingNotFound):
		return "❌ Booking not found"
	case errors.Is(err, service.ErrInvalidStatus):
		return "❌ Unknown status. Use one of: " + statusList()
	default:
		return "❌ Something went wrong"
	}
}

func HelpText() string {
	return "📚 Admin commands:\n\n" +
		"/students - All students\n" +
		"/tutors - All tutors\n" +
		"/bookings - All bookings\n" +
		"/setstatus <id> <STATUS> - Set booking status (" + statusList() + ")\n" +
		"/deletebooking <id> - Delete booking\n" +
		"/help - Show this help"
}

// ParseSetStatusArgs разбирает "/setstatus 12 confirmed"
func ParseSetStatusArgs(text string) (int64, model.BookingStatus, error) {
	args := commandArgs(text)
	if len(args) != 2 {
		return 0, "", fmt.Errorf("%w: want <id> <STATUS>", ErrInvalidCommand)
	}

	id, err := parseID(args[0])
	if err != nil {
		return 0, "", err
	}

	status, err := model.ParseBookingStatus(args[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", service.ErrInvalidStatus, err)
	}

	return id, status, nil
}

// ParseBookingIDArg разбирает "/deletebooking 12"
func ParseBookingIDArg(text string) (int64, error) {
	args := commandArgs(text)
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: want <id>", ErrInvalidCommand)
	}
	return parseID(args[0])
}

// commandArgs аргументы после команды; "/cmd@botname" тоже поддерживается
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad id %q", ErrInvalidCommand, raw)
	}
	return id, nil
}

// FormatBooking форматирует бронирование для отображения
func FormatBooking(booking *model.Booking) string {
	display := GetBookingStatusDisplay(booking.Status)

	return fmt.Sprintf(
		"%s Booking #%d\n"+
			"👩‍🎓 Student: %d  🧑‍🏫 Tutor: %d\n"+
			"📅 %s  📊 %s",
		display.Emoji,
		booking.ID,
		booking.StudentID,
		booking.TutorID,
		booking.BookingDateTime.Format("02.01.2006 15:04"),
		display.Text,
	)
}

func FormatBookings(bookings []*model.Booking) string {
	if len(bookings) == 0 {
		return "📭 No bookings yet"
	}

	parts := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		parts = append(parts, FormatBooking(booking))
	}
	return truncate(fmt.Sprintf("📅 Bookings (%d):\n\n%s", len(bookings), strings.Join(parts, "\n\n")))
}

func FormatStudents(students []*model.Student) string {
	if len(students) == 0 {
		return "📭 No students registered"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👩‍🎓 Students (%d):\n", len(students))
	for _, s := range students {
		fmt.Fprintf(&sb, "\n#%d %s (@%s), %s, %s", s.ID, s.Name, s.Username, s.Email, s.Phone)
	}
	return truncate(sb.String())
}

func FormatTutors(tutors []*model.Tutor) string {
	if len(tutors) == 0 {
		return "📭 No tutors yet"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🧑‍🏫 Tutors (%d):\n", len(tutors))
	for _, t := range tutors {
		fmt.Fprintf(&sb, "\n#%d %s (@%s), %s, %s", t.ID, t.Name, t.Username, t.Location, t.Mobile)
	}
	return truncate(sb.String())
}

func FormatStatusChanged(bookingID int64, display BookingStatusDisplay) string {
	return fmt.Sprintf("%s Booking #%d is now %s", display.Emoji, bookingID, display.Text)
}

func FormatBookingDeleted(bookingID int64) string {
	return fmt.Sprintf("🗑 Booking #%d deleted", bookingID)
}

func statusList() string {
	names := make([]string, 0, len(model.BookingStatuses))
	for _, status := range model.BookingStatuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxMessageLen {
		return text
	}
	return string(runes[:maxMessageLen]) + "\n…"
}
