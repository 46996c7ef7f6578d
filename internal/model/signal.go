package model

// TrendLabel classifies price against its 50/200-day moving averages.
type TrendLabel string

const (
	TrendStrongUptrend      TrendLabel = "Strong Uptrend"
	TrendPotentialUptrend   TrendLabel = "Potential Uptrend"
	TrendStrongDowntrend    TrendLabel = "Strong Downtrend"
	TrendPotentialDowntrend TrendLabel = "Potential Downtrend"
	TrendNeutral            TrendLabel = "Neutral"
	TrendInsufficientData   TrendLabel = "Insufficient Data"
)

// SignalLabel is the discrete trading signal.
type SignalLabel string

const (
	SignalStrongBuy        SignalLabel = "Strong Buy"
	SignalBuy              SignalLabel = "Buy"
	SignalStrongSell       SignalLabel = "Strong Sell"
	SignalSell             SignalLabel = "Sell"
	SignalHold             SignalLabel = "Hold"
	SignalInsufficientData SignalLabel = "Insufficient Data"
)

// Valid reports whether t is one of the known trend labels.
func (t TrendLabel) Valid() bool {
	switch t {
	case TrendStrongUptrend, TrendPotentialUptrend, TrendStrongDowntrend,
		TrendPotentialDowntrend, TrendNeutral, TrendInsufficientData:
		return true
	}
	return false
}

// Valid reports whether s is one of the known signal labels.
func (s SignalLabel) Valid() bool {
	switch s {
	case SignalStrongBuy, SignalBuy, SignalStrongSell, SignalSell, SignalHold, SignalInsufficientData:
		return true
	}
	return false
}
