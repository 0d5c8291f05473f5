package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking states.
const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingCancelled BookingStatus = "cancelled"
	BookingClosed    BookingStatus = "closed"
)

// Booking is a session a student or parent booked with a teacher.
type Booking struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user"`
	TeacherID          string        `json:"teacher"`
	Timeslot           Slot          `json:"timeslot"`
	Grade              string        `json:"grade"`
	Date               time.Time     `json:"date"`
	Area               string        `json:"area"`
	Subject            string        `json:"subject"`
	Status             BookingStatus `json:"status"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
	ClosureReason      *string       `json:"closureReason,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// BookingRequest is the payload of POST /bookings.
type BookingRequest struct {
	TeacherID string `json:"teacher" validate:"required,uuid"`
	Timeslot  Slot   `json:"timeslot"`
	Grade     string `json:"grade" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Area      string `json:"area" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
}
