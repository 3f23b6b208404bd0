package services

import (
	"strconv"
	"strings"
	"time"
)

// ParseTime убирает из строки все символы кроме цифр и разбирает остаток как
// десятичное число. "10:30", "1030" и "10-30" разбираются одинаково - в 1030.
// Пустой или нечисловой остаток даёт 0, ошибкой не считается.
func ParseTime(value string) int {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return number
}

// EncodeTimeOfDay кодирует время суток как hours*100+minutes (14:05 -> 1405).
// Кодирование не является модульной арифметикой времени и безопасно только
// когда обе стороны сравнения получены по одному и тому же соглашению.
func EncodeTimeOfDay(now time.Time) int {
	return now.Hour()*100 + now.Minute()
}

// IsOpenAt проверяет, попадает ли закодированное время now в окно рынка.
// Окно с open <= close действует в пределах одного дня и включает обе границы.
// Окно с open > close переходит через полночь: открыто с open до конца суток
// и с начала суток до close.
func IsOpenAt(openTime string, closeTime string, now int) bool {
	if openTime == "" || closeTime == "" {
		return false
	}

	openNum := ParseTime(openTime)
	closeNum := ParseTime(closeTime)

	if openNum <= closeNum {
		return now >= openNum && now <= closeNum
	}
	return now >= openNum || now <= closeNum
}

// IsMarketOpen проверяет, открыт ли рынок в данный момент. Момент берётся в
// локальном гражданском времени процесса, нормализация часовых поясов не
// выполняется - ограничение сохранено от исходной схемы.
func IsMarketOpen(openTime string, closeTime string) bool {
	return IsOpenAt(openTime, closeTime, EncodeTimeOfDay(time.Now()))
}
