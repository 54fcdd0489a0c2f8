package nextrip

// TextValuePair is the generic label/identifier record the service uses
// for providers, directions, and stops. Text is the human-readable label;
// Value is an opaque identifier.
type TextValuePair struct {
	Text  string `json:"Text"`
	Value string `json:"Value"`
}

// Provider is a transit operator whose routes appear in the Routes
// listing. Value is the provider identifier Route.ProviderID refers to.
type Provider = TextValuePair

// Direction is one of the (at most two) travel directions valid for a
// route. Value holds the direction code, see DirectionCode.
type Direction = TextValuePair

// Stop is a timepoint stop on a route. Value is a short alphanumeric
// identifier, distinct from the full numeric stop ID.
type Stop = TextValuePair

// Route is a transit route in service on the current day. Route is the
// primary identifier used by the other operations.
type Route struct {
	Description string `json:"Description"`
	ProviderID  string `json:"ProviderID"`
	Route       string `json:"Route"`
}

// Departure is one scheduled or real-time departure event at a stop.
// Actual distinguishes real-time predictions from scheduled times and
// controls the format of DepartureText. DepartureTime keeps the service's
// serialized timestamp verbatim and is never parsed. VehicleLatitude and
// VehicleLongitude are only populated when Actual is true.
// VehicleHeading is reserved by the service and always "0".
type Departure struct {
	Actual           bool           `json:"Actual"`
	BlockNumber      string         `json:"BlockNumber"`
	DepartureText    string         `json:"DepartureText"`
	DepartureTime    string         `json:"DepartureTime"`
	Description      string         `json:"Description"`
	Gate             string         `json:"Gate"`
	Route            string         `json:"Route"`
	RouteDirection   RouteDirection `json:"RouteDirection"`
	Terminal         string         `json:"Terminal"`
	VehicleHeading   string         `json:"VehicleHeading"`
	VehicleLatitude  string         `json:"VehicleLatitude"`
	VehicleLongitude string         `json:"VehicleLongitude"`
}

// VehicleLocation is the last reported position of an in-service vehicle.
// Bearing, Odometer, and Speed are documented as always zero (reserved by
// the service for future use).
type VehicleLocation struct {
	BlockNumber      string        `json:"BlockNumber"`
	Direction        DirectionCode `json:"Direction"`
	LocationTime     string        `json:"LocationTime"`
	Route            string        `json:"Route"`
	Terminal         string        `json:"Terminal"`
	VehicleLatitude  string        `json:"VehicleLatitude"`
	VehicleLongitude string        `json:"VehicleLongitude"`
	Bearing          string        `json:"Bearing"`
	Odometer         string        `json:"Odometer"`
	Speed            string        `json:"Speed"`
}
