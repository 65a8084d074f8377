package get_availability

import (
	"github.com/avelkin/SPM-BookingService/internal/domain"
	"github.com/avelkin/SPM-BookingService/pkg/types"
)

// generateSlots генерирует слоты рабочего окна с фиксированным шагом durationMinutes.
// Слот включается, пока его НАЧАЛО строго раньше конца окна - конец слота
// не проверяется. Слот, упирающийся хвостом за end_time, остаётся валидным:
// так исторически ведёт себя выдача доступности, и клиенты на это завязаны.
// Вырожденные случаи: durationMinutes >= длины окна даёт ровно один слот,
// start >= end даёт пустой список.
func generateSlots(entry domain.ScheduleEntry, durationMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	current := entry.StartTime
	for current.IsBefore(entry.EndTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes заворачивается через полночь - окно закончилось
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// markBooked помечает слоты, время которых точно совпадает со временем
// активной записи. Сравнение строковое по "HH:MM": слоты и записи живут
// на одной сетке с одинаковой длительностью, поэтому проверка пересечений
// интервалов здесь не нужна.
func markBooked(slots []types.TimeString, appointments []*domain.Appointment) []Slot {
	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.IsActive() {
			booked[appt.StartTime] = struct{}{}
		}
	}

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		_, taken := booked[slot]
		result[i] = Slot{
			Time:     slot,
			Disabled: taken,
		}
	}

	return result
}
