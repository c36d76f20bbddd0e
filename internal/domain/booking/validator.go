package booking

// Validate decides whether a requested stay is admissible against a listing's
// capacity and current availability. It performs no I/O; callers pass in the
// confirmed ranges and host-blocked dates they already hold. Checks run in a
// fixed order and the first failure wins, so every rejection carries a single
// precise reason:
//
//  1. checkOut > checkIn            -> ErrInvalidDateRange
//  2. 1 <= guests <= maxGuests      -> ErrGuestCountExceeded
//  3. no confirmed range overlaps   -> ErrDatesUnavailable
//  4. no night is host-blocked      -> ErrDatesUnavailable
//
// On success it returns the validated stay range.
func Validate(checkIn, checkOut Date, guests, maxGuests int, reserved []StayRange, blocked []Date) (StayRange, error) {
	stay, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		return StayRange{}, err
	}

	if guests < 1 || guests > maxGuests {
		return StayRange{}, ErrGuestCountExceeded
	}

	for _, r := range reserved {
		if stay.Overlaps(r) {
			return StayRange{}, ErrDatesUnavailable
		}
	}

	for _, day := range blocked {
		if stay.Contains(day) {
			return StayRange{}, ErrDatesUnavailable
		}
	}

	return stay, nil
}
