package app

import "github.com/justplus-adrian/Priority-Interview-main/internal/domain"

// Display names used when a visitation points at a record that no longer
// exists. Dangling references are tolerated, never repaired.
const (
	unknownCustomer = "Unknown Customer"
	unknownHotel    = "Unknown Hotel"
)

// Details joins visitations against pre-fetched customer and hotel lists,
// one map build instead of a lookup per row. Pure; input slices are not
// modified.
func Details(visits []domain.Visitation, customers []domain.Customer, hotels []domain.Hotel) []domain.VisitationDetail {
	customerNames := make(map[int]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	hotelNames := make(map[int]string, len(hotels))
	for _, h := range hotels {
		hotelNames[h.ID] = h.Name
	}

	out := make([]domain.VisitationDetail, 0, len(visits))
	for _, v := range visits {
		out = append(out, domain.VisitationDetail{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			CustomerName: nameOr(customerNames, v.CustomerID, unknownCustomer),
			HotelID:      v.HotelID,
			HotelName:    nameOr(hotelNames, v.HotelID, unknownHotel),
			VisitDate:    v.VisitDate,
		})
	}
	return out
}

func nameOr(names map[int]string, id int, fallback string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fallback
}
