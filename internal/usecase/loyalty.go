package usecase

// defaultEarnDivisor is the spend that earns one loyalty point when config
// does not override it.
const defaultEarnDivisor = 10

// loyaltyPointsEarned computes points for a completed stay: one point per
// full divisor unit of the total amount.
func loyaltyPointsEarned(totalAmount float64, earnDivisor int) int {
	if earnDivisor <= 0 {
		earnDivisor = defaultEarnDivisor
	}
	if totalAmount <= 0 {
		return 0
	}
	return int(totalAmount) / earnDivisor
}
