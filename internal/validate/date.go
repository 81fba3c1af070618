package validate

import "marine-api/internal/shared/civil"

func isCalendarDate(s string) bool {
	_, err := civil.ParseDate(s)
	return err == nil
}
