package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeStringLayout = "15:04"

// TimeString время в формате "HH:MM" (например, "10:00")
// Хранится строкой, чтобы без потерь ходить через JSON и колонки БД
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату "HH:MM" в диапазоне 00:00-23:59
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед (в пределах суток)
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeString(parsed.Add(time.Duration(m) * time.Minute)), nil
}

// MinutesUntil возвращает разницу в минутах между t и other (other - t)
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	to, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// IsBefore возвращает true, если t строго раньше other
// Для валидных зафиксированных по ширине значений "HH:MM" лексикографическое
// сравнение совпадает с хронологическим
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}
