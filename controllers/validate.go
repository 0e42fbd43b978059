package controllers

import "time"

// validDate checks the YYYY-MM-DD format the whole system compares
// lexicographically. time.Parse alone accepts unpadded components, which
// would break that ordering, so the length is pinned too.
func validDate(date string) bool {
	if len(date) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// validTime checks the zero-padded HH:MM wall-clock format.
func validTime(t string) bool {
	if len(t) != 5 {
		return false
	}
	_, err := time.Parse("15:04", t)
	return err == nil
}
