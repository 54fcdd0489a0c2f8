package nextrip

import (
	"encoding/json"
	"errors"
	"net/http"
)

type errorPayload struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorPayload{Error: msg})
}

// respond runs one client operation and writes its result untouched.
// A ServiceError maps to 502 since the failure belongs to the upstream
// exchange, not this server.
func respond(w http.ResponseWriter, call func() (any, error)) {
	result, err := call()
	if err != nil {
		var serviceErr *ServiceError
		if errors.As(err, &serviceErr) {
			writeError(w, http.StatusBadGateway, serviceErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// NewProxyMux exposes the NexTrip operations as passthrough HTTP
// endpoints over the given client. No response is cached or transformed.
func NewProxyMux(client *Client) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(client))

	mux.HandleFunc("/api/nextrip/providers", func(w http.ResponseWriter, r *http.Request) {
		respond(w, func() (any, error) { return client.GetProviders() })
	})

	mux.HandleFunc("/api/nextrip/routes", func(w http.ResponseWriter, r *http.Request) {
		respond(w, func() (any, error) { return client.GetRoutes() })
	})

	mux.HandleFunc("/api/nextrip/directions", func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Query().Get("route")
		if route == "" {
			writeError(w, http.StatusBadRequest, "route parameter is required")
			return
		}
		respond(w, func() (any, error) { return client.GetRouteDirections(route) })
	})

	mux.HandleFunc("/api/nextrip/stops", func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Query().Get("route")
		direction := r.URL.Query().Get("direction")
		if route == "" || direction == "" {
			writeError(w, http.StatusBadRequest, "route and direction parameters are required")
			return
		}
		respond(w, func() (any, error) { return client.GetRouteStops(route, DirectionCode(direction)) })
	})

	mux.HandleFunc("/api/nextrip/departures", func(w http.ResponseWriter, r *http.Request) {
		stop := r.URL.Query().Get("stop")
		if stop == "" {
			writeError(w, http.StatusBadRequest, "stop parameter is required")
			return
		}
		respond(w, func() (any, error) { return client.GetStopDepartures(stop) })
	})

	mux.HandleFunc("/api/nextrip/timepoint-departures", func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Query().Get("route")
		direction := r.URL.Query().Get("direction")
		stop := r.URL.Query().Get("stop")
		if route == "" || direction == "" || stop == "" {
			writeError(w, http.StatusBadRequest, "route, direction, and stop parameters are required")
			return
		}
		respond(w, func() (any, error) {
			return client.GetRouteTimepointDepartures(route, DirectionCode(direction), stop)
		})
	})

	mux.HandleFunc("/api/nextrip/vehicle-locations", func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Query().Get("route")
		if route == "" {
			route = AllRoutes
		}
		respond(w, func() (any, error) { return client.GetVehicleLocations(route) })
	})

	return mux
}
