package domain

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type StepRequest struct {
	Step Step `json:"step" validate:"required,oneof=emergencia asistencia"`
}

type AddressSearchRequest struct {
	Address string `json:"address" validate:"notblank,max=300"`
}

type PinRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// FieldCheckRequest asks for the inline verdict on a single field value.
type FieldCheckRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
	Kind  string `json:"kind,omitempty"`
}

type FieldCheckResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationResult is the outcome of a whole-document validation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type AddItemResponse struct {
	ID string `json:"id"`
}

type LocationResponse struct {
	Address     string  `json:"address"`
	Coordinates *LatLng `json:"coordinates"`
	// Warning is set when the coordinates were stored but the address lookup failed.
	Warning string `json:"warning,omitempty"`
}
