/*io reads the configuration files and writes the snapshot files of the
galaxy collision simulation. Snapshots are flat little-endian binary files:
a fixed-size header followed by 3*Bodies float64 position components in
body-list order.
*/
package io

import (
	"encoding/binary"
	"fmt"
	"io"
)

var end = binary.LittleEndian

// SnapshotHeader describes one snapshot file.
type SnapshotHeader struct {
	// Magic is always snapshotMagic; it doubles as an endianness check.
	Magic int64
	// Bodies is the number of (x, y, z) triples that follow the header.
	Bodies int64
	// Step is the index of the update that produced this state.
	Step int64
	// Time is the signed simulation time of this state.
	Time float64
}

const snapshotMagic = 0x67637261 // "gcra"

// WriteSnapshot writes a snapshot with the given step index and time for
// the flat position buffer xs.
func WriteSnapshot(w io.Writer, step int64, time float64, xs []float64) error {
	if len(xs)%3 != 0 {
		return fmt.Errorf(
			"position buffer length %d is not a multiple of 3", len(xs),
		)
	}

	hd := &SnapshotHeader{
		Magic:  snapshotMagic,
		Bodies: int64(len(xs) / 3),
		Step:   step,
		Time:   time,
	}
	if err := binary.Write(w, end, hd); err != nil {
		return err
	}
	return binary.Write(w, end, xs)
}

// ReadSnapshot reads a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*SnapshotHeader, []float64, error) {
	hd := &SnapshotHeader{}
	if err := binary.Read(r, end, hd); err != nil {
		return nil, nil, err
	}
	if hd.Magic != snapshotMagic {
		return nil, nil, fmt.Errorf(
			"not a snapshot file (magic %x)", hd.Magic,
		)
	}
	if hd.Bodies < 0 {
		return nil, nil, fmt.Errorf("corrupt body count %d", hd.Bodies)
	}

	xs := make([]float64, 3*hd.Bodies)
	if err := binary.Read(r, end, xs); err != nil {
		return nil, nil, err
	}
	return hd, xs, nil
}
