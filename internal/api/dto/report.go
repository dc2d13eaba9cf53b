package dto

import "time"

type HistoryPointResponse struct {
	DayX     int     `json:"day_x"`
	Bookings int     `json:"cumulative_bookings"`
	Revenue  float64 `json:"cumulative_revenue"`
}

type LegResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Passengers  int     `json:"passengers"`
	Revenue     float64 `json:"revenue"`
}

type ODResponse struct {
	Origin      string                 `json:"origin"`
	Destination string                 `json:"destination"`
	Bookings    int                    `json:"bookings"`
	Revenue     float64                `json:"revenue"`
	History     []HistoryPointResponse `json:"history"`
}

type SalesReportResponse struct {
	Service       string        `json:"service"`
	DepartureDate time.Time     `json:"departure_date"`
	DayX          int           `json:"day_x"`
	Itinerary     []string      `json:"itinerary"`
	Legs          []LegResponse `json:"legs"`
	ODs           []ODResponse  `json:"ods"`
}

type ListServicesResponse struct {
	Services []string `json:"services"`
}
