package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/gcfg.v1"
)

func TestSnapshotRoundTrip(t *testing.T) {
	xs := []float64{1, 2, 3, -4.5, 0, 6.25}

	buf := &bytes.Buffer{}
	if err := WriteSnapshot(buf, 17, -0.125, xs); err != nil {
		t.Fatal(err.Error())
	}

	hd, got, err := ReadSnapshot(buf)
	if err != nil {
		t.Fatal(err.Error())
	}
	if hd.Bodies != 2 || hd.Step != 17 || hd.Time != -0.125 {
		t.Errorf("header read back as %+v", hd)
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Errorf("position %d read back as %g instead of %g",
				i, got[i], xs[i])
		}
	}
}

func TestWriteSnapshotRejectsRaggedBuffer(t *testing.T) {
	if err := WriteSnapshot(&bytes.Buffer{}, 0, 0, make([]float64, 7)); err == nil {
		t.Error("WriteSnapshot accepted a buffer with a partial triple")
	}
}

func TestReadSnapshotRejectsForeignFile(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 256))
	if _, _, err := ReadSnapshot(buf); err == nil {
		t.Error("ReadSnapshot accepted a zeroed file")
	}
}

func TestExampleSimulationFileParses(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "example.txt")
	if err := os.WriteFile(fname, []byte(ExampleSimulationFile), 0666); err != nil {
		t.Fatal(err.Error())
	}

	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		t.Fatal(err.Error())
	}
	con := &wrap.Simulation

	if !con.ValidTimeStep() || !con.ValidSteps() || !con.ValidOutput() {
		t.Errorf("example file fails its own validity checks: %+v", con)
	}
	if err := con.GalaxyConfig().Validate(); err != nil {
		t.Errorf("example file maps to an invalid galaxy config: %s",
			err.Error())
	}
	if con.Rings0 != 5 || con.Mass1 != 0.7 || con.Eccentricity != 0.3 {
		t.Errorf("example file parsed as %+v", con)
	}
}
