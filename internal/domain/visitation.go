package domain

import "time"

// Visitation records one customer stay at one hotel. CustomerID and HotelID
// are advisory references: the stores never enforce them, so a visitation may
// outlive the records it points at.
type Visitation struct {
	ID         int       `json:"id"`
	CustomerID int       `json:"customerId"`
	HotelID    int       `json:"hotelId"`
	VisitDate  time.Time `json:"visitDate"`
}

// VisitationDetail is the denormalized read model served to the dashboard.
// It is assembled on read and never stored.
type VisitationDetail struct {
	ID           int       `json:"id"`
	CustomerID   int       `json:"customerId"`
	CustomerName string    `json:"customerName"`
	HotelID      int       `json:"hotelId"`
	HotelName    string    `json:"hotelName"`
	VisitDate    time.Time `json:"visitDate"`
}
