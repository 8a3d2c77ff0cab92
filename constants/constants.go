package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return ":" + port
	}
	return ":8080"
}

const TicksPerQuarter = 960

const DefaultTempo = 140

// chord roots land around C3; extensions stack upward from there
const DefaultOctave = 3

const DefaultVelocity = 92

const BeatsPerBar = 4
