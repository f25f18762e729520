package dto

// OrderForm is the multipart order submission payload. Estimate fields are a
// display hint from the client form; the server recomputes pricing whenever a
// model file accompanies the order.
type OrderForm struct {
	Name           string   `form:"name"`
	Phone          string   `form:"phone"`
	DeliveryMethod string   `form:"deliveryMethod"`
	StreetAddress  *string  `form:"streetAddress"`
	City           *string  `form:"city"`
	State          *string  `form:"state"`
	Zip            *string  `form:"zip"`
	SupportRemoval bool     `form:"supportRemoval"`
	Weight         *float64 `form:"weight"`
	PrintTime      *string  `form:"printTime"`
	BaseCost       *float64 `form:"baseCost"`
}

// OrderPatchRequest is the JSON partial-update payload.
type OrderPatchRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	DeliveryMethod *string `json:"deliveryMethod"`
	StreetAddress  *string `json:"streetAddress"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Zip            *string `json:"zip"`
	SupportRemoval *bool   `json:"supportRemoval"`
	Status         *string `json:"status"`
}

// ErrorResponse is the error payload for 4xx/5xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
}
