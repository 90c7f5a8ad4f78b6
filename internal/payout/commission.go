package payout

const bpsDenominator = 10000

// CalculateCommission splits gross (minor units) at bps basis points,
// rounding the commission half up. net is always gross - commission.
func CalculateCommission(gross int64, bps int) (commission, net int64) {
	if gross <= 0 || bps <= 0 {
		return 0, gross
	}
	commission = (gross*int64(bps) + bpsDenominator/2) / bpsDenominator
	return commission, gross - commission
}
