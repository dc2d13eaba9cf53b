package dto

import "bookings-report-service/internal/domain"

func NewSalesReportResponse(r *domain.SalesReport) SalesReportResponse {
	res := SalesReportResponse{
		Service:       r.ServiceName,
		DepartureDate: r.DepartureDate,
		DayX:          r.DayX,
		Itinerary:     r.Itinerary,
		Legs:          make([]LegResponse, 0, len(r.Legs)),
		ODs:           make([]ODResponse, 0, len(r.ODs)),
	}

	for _, l := range r.Legs {
		res.Legs = append(res.Legs, LegResponse{
			Origin:      l.Origin,
			Destination: l.Destination,
			Passengers:  l.Passengers,
			Revenue:     l.Revenue,
		})
	}

	for _, od := range r.ODs {
		history := make([]HistoryPointResponse, 0, len(od.History))
		for _, h := range od.History {
			history = append(history, HistoryPointResponse{
				DayX:     h.DayX,
				Bookings: h.Bookings,
				Revenue:  h.Revenue,
			})
		}

		res.ODs = append(res.ODs, ODResponse{
			Origin:      od.Origin,
			Destination: od.Destination,
			Bookings:    od.Bookings,
			Revenue:     od.Revenue,
			History:     history,
		})
	}

	return res
}

func NewMaxPathResponse(service string, total int, path []domain.GridCell) MaxPathResponse {
	cells := make([][2]int, 0, len(path))
	for _, c := range path {
		cells = append(cells, [2]int{c.Row, c.Col})
	}
	return MaxPathResponse{Service: service, TotalValue: total, Path: cells}
}
