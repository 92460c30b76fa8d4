package domain

// Forms of the word "день" for count agreement
const (
	DayFormOne  = "день"
	DayFormFew  = "дні"
	DayFormMany = "днів"
)

// DayForm returns the form of "день" that agrees with the count
func DayForm(days int) string {
	mod10 := days % 10
	mod100 := days % 100

	if mod10 == 1 && mod100 != 11 {
		return DayFormOne
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return DayFormFew
	}
	return DayFormMany
}
