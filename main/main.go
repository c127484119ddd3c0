package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime/pprof"

	"gopkg.in/gcfg.v1"

	"galcrash/io"
	"galcrash/sim"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Init(logFile, profileFile string) {
	if logFile != "" {
		lf, err := os.Create(logFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		fg.log = lf
	}

	if profileFile != "" {
		pf, err := os.Create(profileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		pprof.StartCPUProfile(pf)
		fg.prof = pf
	}
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		runStr        string
		exampleConfig bool
	)

	flag.StringVar(
		&runStr, "Run", "",
		"Configuration file with a [Simulation] section. The simulation "+
			"is run headless for the configured number of steps and "+
			"snapshots are written to the configured output directory.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(io.ExampleSimulationFile)
	case runStr != "":
		wrap := io.DefaultSimulationWrapper()
		if err := gcfg.ReadFileInto(wrap, runStr); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Simulation

		if !con.ValidTimeStep() {
			log.Fatal("Invalid/non-existent 'TimeStep' value.")
		} else if !con.ValidSteps() {
			log.Fatal("Invalid/non-existent 'Steps' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}

		runMain(con)
	default:
		log.Fatal("Either -Run or -ExampleConfig must be given.")
	}
}

func runMain(con *io.SimulationConfig) {
	fg := &FileGroup{}
	fg.Init(con.LogFile, con.ProfileFile)
	defer fg.Close()

	s := sim.New()
	if err := s.SetInitial(con.GalaxyConfig(), con.TimeStep); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Generated %d bodies. Running %d steps of %g.",
		s.BodyCount(), con.Steps, con.TimeStep,
	)

	var snap []float64
	for step := 1; step <= con.Steps; step++ {
		if err := s.Update(); err != nil {
			if err == sim.ErrDegenerate {
				log.Printf("Step %d was degenerate and was dropped.", step)
				continue
			}
			log.Fatal(err.Error())
		}

		last := step == con.Steps
		if last || (con.SnapshotEvery > 0 && step%con.SnapshotEvery == 0) {
			snap = s.Snapshot(snap)
			if err := writeSnapshotFile(con.Output, step, s.Time(), snap); err != nil {
				log.Fatal(err.Error())
			}
		}
	}
}

func writeSnapshotFile(dir string, step int, time float64, xs []float64) error {
	fname := path.Join(dir, fmt.Sprintf("snapshot_%08d.gcr", step))
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	return io.WriteSnapshot(f, int64(step), time, xs)
}
