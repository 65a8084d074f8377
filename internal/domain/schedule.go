package domain

import (
	"strings"

	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// ScheduleEntry represents a provider's availability window for one weekday
type ScheduleEntry struct {
	Day       string           // название дня недели, например "Monday"
	StartTime types.TimeString // начало рабочего окна
	EndTime   types.TimeString // конец рабочего окна, строго позже StartTime
}

// ScheduleForWeekday возвращает запись расписания для указанного дня недели.
// Сравнение без учета регистра. Если записей на день несколько,
// используется первая встреченная - порядок задает владелец услуги.
func ScheduleForWeekday(entries []ScheduleEntry, weekday string) (ScheduleEntry, bool) {
	for _, entry := range entries {
		if strings.EqualFold(entry.Day, weekday) {
			return entry, true
		}
	}
	return ScheduleEntry{}, false
}
