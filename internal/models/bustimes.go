package models

// BusTimes is nil when the body has no busTimes list (faults, broken answers).
type BusTimesResult struct {
	BusTimes    *[]BusTimes `json:"busTimes"`
	FaultCode   string      `json:"faultcode,omitempty"`
	FaultString string      `json:"faultstring,omitempty"`
}

type BusTimes struct {
	StopID    string    `json:"stopId"`
	ServiceID string    `json:"mnemoService"`
	Arrivals  []Arrival `json:"timeDatas"`
}

type Arrival struct {
	Minutes int `json:"minutes"`
}
