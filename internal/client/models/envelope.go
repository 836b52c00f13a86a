package models

// Envelope is the backend's response wrapper, kept unchanged in shape.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// AuthResponse is returned by login and register endpoints.
type AuthResponse = Envelope[AuthData]

// TravelRequestResponse wraps a single travel request.
type TravelRequestResponse = Envelope[TravelRequest]

// TravelRequestPageResponse wraps one page of travel requests.
type TravelRequestPageResponse = Envelope[Page[TravelRequest]]
