package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	nextrip "github.com/theoremus-urban-solutions/nextrip-go"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	call := flag.String("call", "", "providers|routes|directions|stops|departures|timepoint|vehicles")
	route := flag.String("route", "", "route identifier")
	direction := flag.String("direction", "", "direction code (1=South, 2=East, 3=West, 4=North)")
	stop := flag.String("stop", "", "numeric stop ID, or timepoint stop for -call timepoint")
	base := flag.String("base", "", "service base URL (overrides config)")
	timeoutMS := flag.Int("timeoutMS", 0, "request timeout in milliseconds (overrides config)")
	flag.Parse()

	nextrip.InitLogging()
	// config.yml is optional for the CLI; flags and library defaults cover
	// everything it needs.
	if err := nextrip.LoadAppConfig(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	switch *mode {
	case "oneshot":
		client := buildClient(*base, *timeoutMS)
		result, err := runCall(client, *call, *route, *direction, *stop)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		buf, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	case "serve":
		nextrip.StartServer()
		nextrip.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}

// buildClient merges flag overrides over the loaded config.
func buildClient(base string, timeoutMS int) *nextrip.Client {
	if base == "" {
		base = nextrip.Config.Service.BaseURL
	}
	if timeoutMS == 0 {
		timeoutMS = nextrip.Config.Service.TimeoutMS
	}

	var opts []nextrip.Option
	if base != "" {
		opts = append(opts, nextrip.WithBaseURL(base))
	}
	if timeoutMS > 0 {
		opts = append(opts, nextrip.WithTimeout(time.Duration(timeoutMS)*time.Millisecond))
	}
	return nextrip.NewClient(opts...)
}

func runCall(client *nextrip.Client, call, route, direction, stop string) (any, error) {
	switch call {
	case "providers":
		return client.GetProviders()
	case "routes":
		return client.GetRoutes()
	case "directions":
		if route == "" {
			return nil, fmt.Errorf("-route is required for -call directions")
		}
		return client.GetRouteDirections(route)
	case "stops":
		if route == "" || direction == "" {
			return nil, fmt.Errorf("-route and -direction are required for -call stops")
		}
		return client.GetRouteStops(route, nextrip.DirectionCode(direction))
	case "departures":
		if stop == "" {
			return nil, fmt.Errorf("-stop is required for -call departures")
		}
		return client.GetStopDepartures(stop)
	case "timepoint":
		if route == "" || direction == "" || stop == "" {
			return nil, fmt.Errorf("-route, -direction, and -stop are required for -call timepoint")
		}
		return client.GetRouteTimepointDepartures(route, nextrip.DirectionCode(direction), stop)
	case "vehicles":
		if route == "" {
			route = nextrip.AllRoutes
		}
		return client.GetVehicleLocations(route)
	default:
		return nil, fmt.Errorf("unknown call %q", call)
	}
}
