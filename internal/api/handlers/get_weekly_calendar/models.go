package get_weekly_calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	weeklyCalendar "github.com/m04kA/SMC-SalonBookingService/internal/usecase/weekly_calendar"
)

// WeeklyCalendarResponse HTTP response model
type WeeklyCalendarResponse struct {
	WorkerID          int64         `json:"workerId"`
	WeekStart         string        `json:"weekStart"`
	WeekEnd           string        `json:"weekEnd"`
	ScheduleAvailable bool          `json:"scheduleAvailable"`
	Days              []CalendarDay `json:"days"`
}

// CalendarDay слоты одного дня
type CalendarDay struct {
	Day   string         `json:"day"`
	Date  string         `json:"date"`
	Slots []CalendarSlot `json:"slots"`
}

// CalendarSlot модель временного слота
type CalendarSlot struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	IsOccupied bool   `json:"isOccupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *weeklyCalendar.Response) *WeeklyCalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		slots := make([]CalendarSlot, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = CalendarSlot{
				Start:      s.Start.String(),
				End:        s.End.String(),
				IsOccupied: s.IsOccupied,
			}
		}
		days[i] = CalendarDay{
			Day:   domain.WeekdayName(d.Weekday),
			Date:  d.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &WeeklyCalendarResponse{
		WorkerID:          resp.WorkerID,
		WeekStart:         resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:           resp.WeekEnd.Format(domain.DateFormat),
		ScheduleAvailable: resp.ScheduleAvailable,
		Days:              days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(workerID int64, weekStartStr, siteIDStr, serviceIDStr string) (*weeklyCalendar.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, weekStartStr)
	if err != nil {
		return nil, fmt.Errorf("weekStart: %w", err)
	}

	req := &weeklyCalendar.Request{
		WorkerID:  workerID,
		WeekStart: weekStart,
	}

	if siteIDStr != "" {
		siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("siteId: %w", err)
		}
		req.SiteID = &siteID
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("serviceId: %w", err)
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}
