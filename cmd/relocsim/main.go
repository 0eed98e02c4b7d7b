// relocsim drives the gaze controller without a window: every step it aims the
// head straight at the target, pulls the trigger and checks where the target went.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gazehunt/internal/config"
	"gazehunt/internal/gaze"
	"gazehunt/internal/log"
)

var (
	hits       = flag.Int("n", 10000, "number of hits to simulate")
	seed       = flag.Int64("seed", 1, "relocation RNG seed")
	configPath = flag.String("config", "", "JSON config file for target and relocation settings")
	logLevel   = flag.String("log-level", "warn", "debug, info, warn or error")
)

var (
	errMissed  = errors.New("trigger missed while aiming at the target")
	errVisible = errors.New("relocated target still under the gaze")
	errRange   = errors.New("relocated distance outside the policy range")
)

// Report summarizes a run.
type Report struct {
	Hits         int
	MinDistance  float64
	MaxDistance  float64
	MeanDistance float64
	MinElevation float64 // degrees
	MaxElevation float64
	MinTurn      float64 // degrees, horizontal bearing change per hit
	MaxTurn      float64
}

func main() {
	flag.Parse()
	log.Init(*logLevel)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "relocsim:", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "relocsim:", err)
		os.Exit(1)
	}

	r, err := Simulate(*hits, cfg.Settings(), gaze.NewRand(*seed))
	printReport(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "relocsim:", err)
		os.Exit(1)
	}
}

// Simulate runs n aimed triggers and stops at the first broken guarantee.
func Simulate(n int, settings gaze.Settings, rng gaze.Rand) (Report, error) {
	c := gaze.NewController(settings, rng)
	r := Report{
		MinDistance:  math.Inf(1),
		MaxDistance:  math.Inf(-1),
		MinElevation: math.Inf(1),
		MaxElevation: math.Inf(-1),
		MinTurn:      math.Inf(1),
		MaxTurn:      math.Inf(-1),
	}
	var sum float64

	for i := 0; i < n; i++ {
		before := c.Target().Position()
		head := aimAt(before)
		c.Frame(head)

		out := c.Trigger()
		if !out.Hit {
			return r, fmt.Errorf("step %d: %w (pitch %.4f, yaw %.4f)", i, errMissed, out.Gaze.Pitch, out.Gaze.Yaw)
		}
		if c.IsLookingAt() {
			return r, fmt.Errorf("step %d: %w", i, errVisible)
		}

		d := float64(out.Target.Distance)
		if d < settings.Policy.MinDistance || d >= settings.Policy.MaxDistance {
			return r, fmt.Errorf("step %d: %w: %v", i, errRange, d)
		}

		after := out.Target.Position()
		elev := elevation(after)
		turn := bearingChange(before, after)

		r.Hits++
		sum += d
		r.MinDistance = math.Min(r.MinDistance, d)
		r.MaxDistance = math.Max(r.MaxDistance, d)
		r.MinElevation = math.Min(r.MinElevation, elev)
		r.MaxElevation = math.Max(r.MaxElevation, elev)
		r.MinTurn = math.Min(r.MinTurn, turn)
		r.MaxTurn = math.Max(r.MaxTurn, turn)
	}
	if r.Hits > 0 {
		r.MeanDistance = sum / float64(r.Hits)
	}
	return r, nil
}

// aimAt is a level head pose looking at p from the origin.
func aimAt(p rl.Vector3) rl.Matrix {
	return rl.MatrixLookAt(rl.Vector3Zero(), p, rl.Vector3{X: 0, Y: 1, Z: 0})
}

func elevation(p rl.Vector3) float64 {
	return math.Atan2(float64(p.Y), math.Hypot(float64(p.X), float64(p.Z))) * 180 / math.Pi
}

// bearingChange is the counter-clockwise turn about +Y from a to b, in [0, 360).
func bearingChange(a, b rl.Vector3) float64 {
	ba := math.Atan2(-float64(a.X), -float64(a.Z))
	bb := math.Atan2(-float64(b.X), -float64(b.Z))
	deg := (bb - ba) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func printReport(r Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hits\t%d\n", r.Hits)
	if r.Hits > 0 {
		fmt.Fprintf(w, "distance\tmin %.3f\tmean %.3f\tmax %.3f\n", r.MinDistance, r.MeanDistance, r.MaxDistance)
		fmt.Fprintf(w, "elevation\tmin %.2f°\tmax %.2f°\n", r.MinElevation, r.MaxElevation)
		fmt.Fprintf(w, "turn\tmin %.2f°\tmax %.2f°\n", r.MinTurn, r.MaxTurn)
	}
	w.Flush()
}
