package http

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	ClientName string                   `json:"clientName"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest describes one line item in a create request.
type CreateOrderItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// validate performs surface-level request validation and returns a
// client-facing message, or "" when the body is well formed. Domain
// constructors re-check the same rules; this layer only owns the wording.
func (r CreateOrderRequest) validate() string {
	if r.ClientName == "" {
		return "The clientName cannot be empty"
	}
	if len(r.Items) == 0 {
		return "The list of items cannot be empty"
	}
	for _, item := range r.Items {
		if item.Description == "" {
			return "The description cannot be empty"
		}
		if item.Quantity < 1 {
			return "The quantity must be at least 1"
		}
		if item.UnitPrice <= 0 {
			return "The unit price must be greater than 0"
		}
	}
	return ""
}

// AdvanceSummary is returned when an advance reaches the terminal status and
// the order leaves the active scope. PreviousStatus is omitted for the
// idempotent case where the order was already delivered.
type AdvanceSummary struct {
	SoftDeleted    bool    `json:"softDeleted"`
	PreviousStatus *string `json:"previousStatus,omitempty"`
	CurrentStatus  string  `json:"currentStatus"`
}

// Error is the JSON error body shared by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
