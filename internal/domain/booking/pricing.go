package booking

type PriceCalculator interface {
	Quote(nightly Money, stay StayRange) (Money, error)
}

// NightlyPriceCalculator prices a stay as nightly rate times whole nights.
// All arithmetic is in integer cents, so the result is exact and deterministic.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) Quote(nightly Money, stay StayRange) (Money, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return Money{}, ErrInvalidDateRange
	}
	return nightly.Times(nights), nil
}
