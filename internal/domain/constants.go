package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих слот.
// Используется при подсчёте занятых слотов и проверке конфликтов.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses список конечных статусов.
// Отменённая запись освобождает слот для повторного бронирования.
var TerminalStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
}
