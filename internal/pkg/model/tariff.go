package model

// Section is one region of the tariff page. Business and private housing
// tariffs live in separate sections that share the same table layout.
type Section struct {
	ID      string `json:"id"`
	Private bool   `json:"private"`
}

// TariffRecord is a single exported tariff row.
type TariffRecord struct {
	Name         string `json:"name"`
	ChannelCount *int   `json:"channelCount"` // only for combo tariffs
	AccessSpeed  *int   `json:"accessSpeed"`
	MonthlyFee   int    `json:"monthlyFee"`
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
