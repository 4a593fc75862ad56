// wesgen emits fake Wesnoth console output for exercising wescoco:
// the startup banner followed by randomized structured log lines.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"
)

var (
	lineCount  = flag.Int("lines", 50, "Number of structured log lines to generate")
	errorRate  = flag.Float64("error-rate", 10.0, "Percentage of warning/error logs (0-100)")
	skipBanner = flag.Bool("no-banner", false, "Skip the startup banner")
)

var domains = []string{
	"general",
	"config",
	"filesystem",
	"display",
	"audio",
	"network",
	"ai/general",
	"engine",
}

var messages = []string{
	"reading cache",
	"loading game configuration",
	"initializing video subsystem",
	"found add-on 'Legend_of_the_Invincibles'",
	"could not open image 'units/unknown-unit.png'",
	"connection to server established",
	"schema validation failed for WML node [side]",
	"music volume set to 100",
	"recruiting unit at (12,7)",
	"savegame version mismatch, attempting to load anyway",
}

func main() {
	flag.Parse()

	if !*skipBanner {
		printBanner()
	}

	start := time.Now()
	for i := 0; i < *lineCount; i++ {
		stamp := start.Add(time.Duration(i) * time.Second)
		fmt.Printf("%s %s %s %s: %s\n",
			stamp.Format("20060102"),
			stamp.Format("15:04:05"),
			randomLevel(),
			domains[rand.Intn(len(domains))],
			messages[rand.Intn(len(messages))])
	}
}

func printBanner() {
	fmt.Println("Battle for Wesnoth v1.18.0")
	fmt.Println("Started on " + time.Now().Format(time.ANSIC))
	fmt.Println()
	fmt.Println("Automatically found a possible data directory at: /usr/share/wesnoth")
	fmt.Println("Starting with directory: /usr/share/wesnoth")
	fmt.Println("Data directory:       /usr/share/wesnoth")
	fmt.Println("User configuration directory: /home/player/.config/wesnoth")
	fmt.Println("User data directory:  /home/player/.local/share/wesnoth")
	fmt.Println("Cache directory:      /home/player/.cache/wesnoth")
	fmt.Println("Setting mode to 1920x1080")
}

func randomLevel() string {
	if rand.Float64()*100 < *errorRate {
		if rand.Intn(2) == 0 {
			return "warning"
		}
		return "error"
	}
	if rand.Intn(4) == 0 {
		return "debug"
	}
	return "info"
}
