package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на запись к работнику
type Request struct {
	ClientID  int64           // ID клиента (из X-User-ID)
	WorkerID  int64           // ID работника
	WeekStart time.Time       // Отображаемая неделя, в которой выбран слот
	Day       string          // Название дня недели (английское или испанское)
	StartTime types.LocalTime // Начало слота
	EndTime   types.LocalTime // Конец слота
	SiteID    int64           // ID филиала
	ServiceID int64           // ID услуги
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	Status    string
	Date      time.Time
	StartTime types.LocalTime
	EndTime   types.LocalTime
	WorkerID  int64
	SiteID    int64
	ServiceID int64
	ClientID  int64
	CreatedAt time.Time
}
