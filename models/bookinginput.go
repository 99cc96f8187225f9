package models

// CreateBookingRequest is the public booking submission payload. Addons is
// left untyped because clients have historically sent it as a list, a
// wrapped object or a JSON-encoded string; it is normalized once at the
// service boundary.
type CreateBookingRequest struct {
	CustomerName    string      `json:"customerName" binding:"required"`
	CustomerEmail   string      `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string      `json:"customerPhone" binding:"required"`
	EventDate       string      `json:"eventDate" binding:"required"`
	SlotID          string      `json:"slotId" binding:"required"`
	PlanID          string      `json:"planId" binding:"required"`
	Addons          interface{} `json:"addons"`
	SpecialRequests string      `json:"specialRequests"`
}

// UpdateBookingStatusRequest carries an admin status transition.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingPaymentRequest carries an admin payment update.
type UpdateBookingPaymentRequest struct {
	PaymentStatus string  `json:"paymentStatus" binding:"required"`
	AdvancePaid   float64 `json:"advancePaid"`
}

// UpsertSlotRequest is the admin payload for creating or updating a Slot.
type UpsertSlotRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,min=0"`
}

// UpsertPlanRequest is the admin payload for creating or updating a Plan.
type UpsertPlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"min=0"`
	DurationHours int      `json:"durationHours" binding:"required,min=1"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"isActive"`
	DisplayOrder  int      `json:"displayOrder"`
}

// UpsertAddonRequest is the admin payload for creating or updating an Addon.
type UpsertAddonRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"min=0"`
	Category     string  `json:"category"`
	IsAvailable  *bool   `json:"isAvailable"`
	MaxQuantity  int     `json:"maxQuantity" binding:"min=0"`
	DisplayOrder int     `json:"displayOrder"`
}

// LoginRequest is the admin sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the signed-in account.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
