package domain

// A named stop where a service lets passengers board or alight.
// Stations are compared by pointer: a Service and everything it owns
// must share a single *Station per stop.
type Station struct {
	Name string
}

func NewStation(name string) *Station {
	return &Station{Name: name}
}

// Build one Station per name, preserving order.
func NewStations(names ...string) []*Station {
	stations := make([]*Station, 0, len(names))
	for _, n := range names {
		stations = append(stations, NewStation(n))
	}
	return stations
}

func (s *Station) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}
