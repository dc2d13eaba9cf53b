package domain

// A booking for a seat on a particular origin-destination.
// Passengers are immutable once created. ID is the booking reference carried
// through persistence; identity within a Service is the pointer itself.
type Passenger struct {
	ID          string
	Origin      *Station
	Destination *Station
	SaleDayX    int
	Price       float64
}

func NewPassenger(origin, destination *Station, saleDayX int, price float64) *Passenger {
	return &Passenger{
		Origin:      origin,
		Destination: destination,
		SaleDayX:    saleDayX,
		Price:       price,
	}
}
