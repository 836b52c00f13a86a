package models

import "strings"

// Status is the travel request state. The accepted set is owned by the
// backend; the constants below are the values known today and nothing in
// the client rejects other strings.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// TravelRequest is a user's request to travel to a destination.
type TravelRequest struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	User          *UserSummary `json:"user,omitempty"`
	Name          string       `json:"name"`
	Country       string       `json:"country,omitempty"`
	Town          string       `json:"town,omitempty"`
	State         string       `json:"state,omitempty"`
	Region        string       `json:"region,omitempty"`
	DepartureDate string       `json:"departure_date"`
	ReturnDate    string       `json:"return_date"`
	Status        Status       `json:"status"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

// Destination renders the optional destination parts as "country - town - state - region".
func (t TravelRequest) Destination() string {
	return joinNonEmpty(" - ", t.Country, t.Town, t.State, t.Region)
}

// CreateTravelRequest is the body of /user/travel-request/create.
type CreateTravelRequest struct {
	Name          string `json:"name"`
	Country       string `json:"country,omitempty"`
	Town          string `json:"town,omitempty"`
	State         string `json:"state,omitempty"`
	Region        string `json:"region,omitempty"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

// Normalize returns a copy with every string field trimmed.
func (c CreateTravelRequest) Normalize() CreateTravelRequest {
	return CreateTravelRequest{
		Name:          strings.TrimSpace(c.Name),
		Country:       strings.TrimSpace(c.Country),
		Town:          strings.TrimSpace(c.Town),
		State:         strings.TrimSpace(c.State),
		Region:        strings.TrimSpace(c.Region),
		DepartureDate: strings.TrimSpace(c.DepartureDate),
		ReturnDate:    strings.TrimSpace(c.ReturnDate),
	}
}

// Fields exposes the request as a field map for the validation layer.
func (c CreateTravelRequest) Fields() map[string]string {
	return map[string]string{
		"name":           c.Name,
		"country":        c.Country,
		"town":           c.Town,
		"state":          c.State,
		"region":         c.Region,
		"departure_date": c.DepartureDate,
		"return_date":    c.ReturnDate,
	}
}

// StatusUpdate is the body of the admin status endpoint.
type StatusUpdate struct {
	Status Status `json:"status"`
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
