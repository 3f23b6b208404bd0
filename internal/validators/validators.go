package validators

import (
	"strings"
)

// CheckMarketNumber проверяет число, публикуемое для рынка. Формат записи
// свободный (встречаются результаты вида "123-45-678"), строка пишется в
// хранилище как есть - отклоняется только пустой ввод.
func CheckMarketNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}
