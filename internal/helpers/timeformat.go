package helpers

import "time"

// Отметка одобрения печатается в гражданском времени Индии. Используется
// фиксированное смещение вместо tzdata: IST не имеет переходов на летнее время.
var ZoneIST = time.FixedZone("IST", 5*3600+30*60)

const (
	approvedOnLayout = "January 2, 2006, 3:04:05 PM"
	dayLayout        = "January 2, 2006"
	// ярлык зоны подставляется текстом вместо аббревиатуры
	zoneLabel = "UTC+5:30"
)

// FormatApprovedOn - человекочитаемая отметка одобрения заявки.
// Строка позже сравнивается только через вхождение подстроки (см. FormatDay),
// обратно в дату не разбирается.
func FormatApprovedOn(now time.Time) string {
	return now.In(ZoneIST).Format(approvedOnLayout) + " " + zoneLabel
}

// FormatDay - день в том же представлении, для проверки "одобрено сегодня"
func FormatDay(now time.Time) string {
	return now.In(ZoneIST).Format(dayLayout)
}
