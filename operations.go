package nextrip

import (
	"fmt"
	"net/url"
)

// GetProviders lists the transit operators whose routes appear in the
// Routes listing.
func (c *Client) GetProviders() ([]Provider, error) {
	var providers []Provider
	if err := c.get("/Providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetRoutes lists the routes in service on the current day.
func (c *Client) GetRoutes() ([]Route, error) {
	var routes []Route
	if err := c.get("/Routes", &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// GetRouteDirections lists the directions currently valid for a route.
// A route has at most two.
func (c *Client) GetRouteDirections(route string) ([]Direction, error) {
	var directions []Direction
	if err := c.get(fmt.Sprintf("/Directions/%s", url.PathEscape(route)), &directions); err != nil {
		return nil, err
	}
	return directions, nil
}

// GetRouteStops lists the timepoint stops for a route in the given
// direction.
func (c *Client) GetRouteStops(route string, direction DirectionCode) ([]Stop, error) {
	var stops []Stop
	if err := c.get(fmt.Sprintf("/Stops/%s/%s", url.PathEscape(route), url.PathEscape(string(direction))), &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// GetStopDepartures lists the scheduled and real-time departures for a
// numeric stop ID.
func (c *Client) GetStopDepartures(stopID string) ([]Departure, error) {
	var departures []Departure
	if err := c.get(fmt.Sprintf("/%s", url.PathEscape(stopID)), &departures); err != nil {
		return nil, err
	}
	return departures, nil
}

// GetRouteTimepointDepartures lists the departures for a route at a
// timepoint stop in the given direction.
func (c *Client) GetRouteTimepointDepartures(route string, direction DirectionCode, stopID string) ([]Departure, error) {
	var departures []Departure
	path := fmt.Sprintf("/%s/%s/%s", url.PathEscape(route), url.PathEscape(string(direction)), url.PathEscape(stopID))
	if err := c.get(path, &departures); err != nil {
		return nil, err
	}
	return departures, nil
}

// GetVehicleLocations lists the last known positions of in-service
// vehicles on a route. Pass AllRoutes to request every route; no
// filtering happens client-side.
func (c *Client) GetVehicleLocations(route string) ([]VehicleLocation, error) {
	var locations []VehicleLocation
	if err := c.get(fmt.Sprintf("/VehicleLocations/%s", url.PathEscape(route)), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}
