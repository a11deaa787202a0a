package sunshift_test

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/sunshift"
)

// ExampleSearch finds the best fixed offset for Boston and a 06:00-19:15
// daylight window.
func ExampleSearch() {
	boston := sunshift.Coordinates{
		Lat: 42.3555,
		Lon: -71.0565,
	}
	window, err := sunshift.ParseWindow("06:00", "19:15")
	if err != nil {
		panic(err)
	}

	scorer := sunshift.NewScorer(sunshift.SolverProvider{}, boston, window, 2025)
	res, err := sunshift.Search(scorer)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Best offset: %s hours\n", res.Best)
	fmt.Printf("Total sunlight hours in desired window: %.1f\n", res.Score)
}

// ExampleLocalTimes shows the June solstice sunrise and sunset on a
// fixed UTC-4 clock.
func ExampleLocalTimes() {
	nyc := sunshift.Coordinates{
		Lat: 40.7128,
		Lon: -74.0060,
	}
	kd := sunshift.KeyDate{Name: "June solstice", Date: sunshift.JuneSolstice(2025)}

	dt, err := sunshift.LocalTimes(sunshift.NOAAProvider{}, nyc, kd, -4)
	if err != nil {
		panic(err)
	}
	fmt.Println("Sunrise:", dt.Sunrise.Format(time.Kitchen))
	fmt.Println("Sunset:", dt.Sunset.Format(time.Kitchen))
}
