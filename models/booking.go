package models

import "time"

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingRescheduled BookingStatus = "rescheduled"
	BookingInProgress  BookingStatus = "in-progress"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
	BookingNoShow      BookingStatus = "no-show"
	BookingDisputed    BookingStatus = "disputed"
)

// UpdatedBy identifies which kind of actor performed a status change.
type UpdatedBy string

const (
	UpdatedByUser     UpdatedBy = "user"
	UpdatedByProvider UpdatedBy = "provider"
	UpdatedByAdmin    UpdatedBy = "admin"
	UpdatedBySystem   UpdatedBy = "system"
)

// PaymentStatus is a bookkeeping field only; no gateway is integrated.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// AdditionalCharge is an extra line item added to the base amount.
type AdditionalCharge struct {
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Taxes holds the tax total applied to a booking.
type Taxes struct {
	Total float64 `bson:"total" json:"total"`
}

// Pricing holds the booking financials. TotalAmount is derived and
// recomputed on every save that touches pricing.
type Pricing struct {
	BaseAmount        float64            `bson:"baseAmount" json:"baseAmount"`
	AdditionalCharges []AdditionalCharge `bson:"additionalCharges,omitempty" json:"additionalCharges,omitempty"`
	Discount          float64            `bson:"discount" json:"discount"`
	Taxes             Taxes              `bson:"taxes" json:"taxes"`
	TotalAmount       float64            `bson:"totalAmount" json:"totalAmount"`
	Currency          string             `bson:"currency" json:"currency"`
}

// Scheduling holds the requested and actual service times.
type Scheduling struct {
	ScheduledDate   time.Time  `bson:"scheduledDate" json:"scheduledDate"`
	TimeSlot        string     `bson:"timeSlot,omitempty" json:"timeSlot,omitempty"`
	ActualStartTime *time.Time `bson:"actualStartTime,omitempty" json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time `bson:"actualEndTime,omitempty" json:"actualEndTime,omitempty"`
}

// ServiceSnapshot freezes the booked service at creation time so later
// service edits do not alter historical bookings.
type ServiceSnapshot struct {
	Name        string  `bson:"name" json:"name"`
	Category    string  `bson:"category" json:"category"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   float64 `bson:"basePrice" json:"basePrice"`
	Duration    int     `bson:"durationMinutes" json:"durationMinutes"`
}

// CustomerSnapshot freezes the customer contact details at creation time.
type CustomerSnapshot struct {
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
}

// StatusEntry is one record in the append-only status history. Creation does
// not append an entry; every subsequent status change does.
type StatusEntry struct {
	Status    BookingStatus `bson:"status" json:"status"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
	UpdatedBy UpdatedBy     `bson:"updatedBy" json:"updatedBy"`
	Reason    string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes     string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Cancellation is populated only when the booking enters cancelled.
type Cancellation struct {
	CancelledBy         UpdatedBy `bson:"cancelledBy" json:"cancelledBy"`
	CancelledAt         time.Time `bson:"cancelledAt" json:"cancelledAt"`
	Reason              string    `bson:"reason,omitempty" json:"reason,omitempty"`
	RefundEligible      bool      `bson:"refundEligible" json:"refundEligible"`
	CancellationCharges float64   `bson:"cancellationCharges" json:"cancellationCharges"`
}

// Completion records the work done when the booking is completed.
type Completion struct {
	WorkDetails string    `bson:"workDetails" json:"workDetails"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}

// Booking is a service engagement between one user and one provider's
// service. The references are set at creation and immutable; the document is
// never deleted.
type Booking struct {
	ID             string           `bson:"id" json:"id"`
	BookingCode    string           `bson:"bookingCode" json:"bookingCode"`
	UserID         string           `bson:"userId" json:"userId"`
	ServiceID      string           `bson:"serviceId" json:"serviceId"`
	ProviderID     string           `bson:"providerId" json:"providerId"`
	ServiceDetails ServiceSnapshot  `bson:"serviceDetails" json:"serviceDetails"`
	CustomerInfo   CustomerSnapshot `bson:"customerInfo" json:"customerInfo"`
	Pricing        Pricing          `bson:"pricing" json:"pricing"`
	Scheduling     Scheduling       `bson:"scheduling" json:"scheduling"`
	Status         BookingStatus    `bson:"status" json:"status"`
	StatusHistory  []StatusEntry    `bson:"statusHistory" json:"statusHistory"`
	Cancellation   *Cancellation    `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Completion     *Completion      `bson:"completion,omitempty" json:"completion,omitempty"`
	PaymentStatus  PaymentStatus    `bson:"paymentStatus" json:"paymentStatus"`
	Notes          string           `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt,omitzero"`
}
