package models

// DestinationAddress is the address breakdown returned by the geocoder.
type DestinationAddress struct {
	Country       string `json:"country,omitempty"`
	Town          string `json:"town,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Region        string `json:"region,omitempty"`
	Municipality  string `json:"municipality,omitempty"`
	County        string `json:"county,omitempty"`
	StateDistrict string `json:"state_district,omitempty"`
	ISO3166Lvl4   string `json:"ISO3166-2-lvl4,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
}

// Format joins country, town, state and region with " - ", skipping blanks.
func (a DestinationAddress) Format() string {
	return joinNonEmpty(" - ", a.Country, a.locality(), a.State, a.Region)
}

// locality falls back to city for places the geocoder does not tag as a town.
func (a DestinationAddress) locality() string {
	if a.Town != "" {
		return a.Town
	}
	return a.City
}

// Destination is one geocoder search hit.
type Destination struct {
	PlaceID     int64              `json:"place_id"`
	Licence     string             `json:"licence"`
	OSMType     string             `json:"osm_type"`
	OSMID       int64              `json:"osm_id"`
	Lat         string             `json:"lat"`
	Lon         string             `json:"lon"`
	Class       string             `json:"class"`
	Type        string             `json:"type"`
	PlaceRank   int                `json:"place_rank"`
	Importance  float64            `json:"importance"`
	AddressType string             `json:"addresstype"`
	Name        string             `json:"name"`
	DisplayName string             `json:"display_name"`
	Address     DestinationAddress `json:"address"`
	BoundingBox []string           `json:"boundingbox"`
}

// Coordinates are kept as the strings the geocoder sends.
type Coordinates struct {
	Lat string
	Lon string
}

// LocationDetails is the display-ready view of a Destination.
type LocationDetails struct {
	Name             string
	Coordinates      Coordinates
	Address          DestinationAddress
	FormattedAddress string
	DisplayName      string
}

// Location builds the display view of d.
func (d Destination) Location() LocationDetails {
	return LocationDetails{
		Name:             d.Name,
		Coordinates:      Coordinates{Lat: d.Lat, Lon: d.Lon},
		Address:          d.Address,
		FormattedAddress: d.Address.Format(),
		DisplayName:      d.DisplayName,
	}
}

// ApplyTo copies the destination parts of d into a create request.
func (d Destination) ApplyTo(req CreateTravelRequest) CreateTravelRequest {
	req.Country = d.Address.Country
	req.Town = d.Address.locality()
	req.State = d.Address.State
	req.Region = d.Address.Region
	return req
}
