package model

// AssetType groups investments for allocation display.
type AssetType string

// Known asset types. Any other value is treated as AssetOther.
const (
	AssetStocks     AssetType = "stocks"
	AssetBonds      AssetType = "bonds"
	AssetCrypto     AssetType = "crypto"
	AssetRealEstate AssetType = "realestate"
	AssetCash       AssetType = "cash"
	AssetOther      AssetType = "other"
)

// ParseAssetType maps a stored asset type, folding unknown values into AssetOther.
func ParseAssetType(s string) AssetType {
	switch t := AssetType(s); t {
	case AssetStocks, AssetBonds, AssetCrypto, AssetRealEstate, AssetCash:
		return t
	default:
		return AssetOther
	}
}

// Investment is a single position in the portfolio.
type Investment struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         AssetType `json:"type"`
	InitialValue float64   `json:"initialValue"`
	CurrentValue float64   `json:"currentValue"`
	ROI          float64   `json:"roi"` // signed percent
}

// Performance buckets an ROI for display.
type Performance int

// Performance buckets, ordered from worst to best.
const (
	PerformanceStrongNegative Performance = iota
	PerformanceWeakNegative
	PerformanceNeutral
	PerformanceWeakPositive
	PerformanceStrongPositive
)

func (p Performance) String() string {
	switch p {
	case PerformanceStrongNegative:
		return "strong-negative"
	case PerformanceWeakNegative:
		return "weak-negative"
	case PerformanceNeutral:
		return "neutral"
	case PerformanceWeakPositive:
		return "weak-positive"
	case PerformanceStrongPositive:
		return "strong-positive"
	default:
		return "unknown"
	}
}

// MarshalText renders the bucket name in JSON payloads.
func (p Performance) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
