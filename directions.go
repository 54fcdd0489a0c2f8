package nextrip

// DirectionCode is the service's encoding of a compass direction. The
// codes are opaque strings defined by the service schema: published
// copies of the upstream documentation disagree on their numeric meaning,
// so the library passes them through without interpreting them. The
// constants below follow the current API reference
// (1=South, 2=East, 3=West, 4=North).
type DirectionCode string

const (
	DirectionSouth DirectionCode = "1"
	DirectionEast  DirectionCode = "2"
	DirectionWest  DirectionCode = "3"
	DirectionNorth DirectionCode = "4"
)

// RouteDirection is the bound label the service attaches to a departure.
type RouteDirection string

const (
	Eastbound  RouteDirection = "EB"
	Westbound  RouteDirection = "WB"
	Northbound RouteDirection = "NB"
	Southbound RouteDirection = "SB"
)

// AllRoutes is the route value GetVehicleLocations accepts to request
// locations across every route.
const AllRoutes = "0"
