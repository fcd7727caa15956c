package domain

import "time"

type Customer struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	TotalPurchases   int       `json:"totalPurchases"`
}
