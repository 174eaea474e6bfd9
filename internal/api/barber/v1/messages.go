// Package barberpb описывает API записи к мастеру: сообщения, интерфейс
// сервера и клиент. Сообщения идут по gRPC в JSON-кодеке.
package barberpb

import "time"

type Booking struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Service   string    `json:"service"`
	Barber    string    `json:"barber"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Note      string    `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Reviewer  string    `json:"reviewer"`
	Service   string    `json:"service"`
	Barber    string    `json:"barber,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Empty struct{}

type CreateBookingRequest struct {
	Customer string `json:"customer"`
	Service  string `json:"service"`
	Barber   string `json:"barber"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Note     string `json:"note,omitempty"`
}

type BookingResponse struct {
	Booking *Booking `json:"booking"`
	// Заполняется только в GetBooking с Customer.
	CanReview bool `json:"can_review,omitempty"`
}

// GetBookingRequest — если Customer задан, бронь должна принадлежать ему.
type GetBookingRequest struct {
	ID       string `json:"id"`
	Customer string `json:"customer,omitempty"`
}

type ListMyBookingsRequest struct {
	Customer string `json:"customer"`
}

type MyBooking struct {
	Booking   *Booking `json:"booking"`
	Reviewed  bool     `json:"reviewed"`
	CanReview bool     `json:"can_review"`
}

type ListMyBookingsResponse struct {
	Bookings []*MyBooking `json:"bookings"`
}

type SetStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SetScheduleRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
}

type UpdateBookingRequest struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Service  string `json:"service"`
	Barber   string `json:"barber"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Note     string `json:"note,omitempty"`
	Status   string `json:"status,omitempty"`
}

type DeleteBookingRequest struct {
	ID string `json:"id"`
}

type ListBookingsRequest struct {
	Status    string `json:"status,omitempty"`
	Barber    string `json:"barber,omitempty"`
	Date      string `json:"date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Q         string `json:"q,omitempty"`
}

type ListBookingsResponse struct {
	Bookings []*Booking `json:"bookings"`
}

type GetStatsRequest struct {
	Date string `json:"date,omitempty"`
}

type StatsResponse struct {
	Date      string `json:"date"`
	Total     int64  `json:"total"`
	Pending   int64  `json:"pending"`
	Confirmed int64  `json:"confirmed"`
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
}

type ListServicesRequest struct{}

type ListServicesResponse struct {
	Services []string `json:"services"`
}

type CreateReviewRequest struct {
	Reviewer  string `json:"reviewer"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type ReviewResponse struct {
	Review *Review `json:"review"`
}

type ListServiceReviewsRequest struct {
	Service string `json:"service"`
	Page    int    `json:"page,omitempty"`
	Size    int    `json:"size,omitempty"`
}

type ListServiceReviewsResponse struct {
	Items   []*Review `json:"items"`
	Page    int       `json:"page"`
	Size    int       `json:"size"`
	Total   int       `json:"total"`
	HasNext bool      `json:"has_next"`
	HasPrev bool      `json:"has_prev"`
}

type GetServiceRatingRequest struct {
	Service string `json:"service"`
}

type ServiceRating struct {
	Service string  `json:"service"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ListServiceRatingsRequest struct{}

type ListServiceRatingsResponse struct {
	Ratings []*ServiceRating `json:"ratings"`
}
