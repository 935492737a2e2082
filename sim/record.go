// sim/record.go
// Copyright(c) 2025 gatc contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
	"io"

	"github.com/avfritz/gatc/util"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// RecordFrame is one tick of a recording: the tick number, the outcome,
// and the state of every plane still flying, in id order.
type RecordFrame struct {
	Tick    int
	Outcome Outcome
	Planes  []Plane
}

// Recorder writes one msgpack-encoded frame per tick through a zstd
// writer, giving a compact recording of a run that can be reviewed after
// the terminal has been torn down.
type Recorder struct {
	zw   *zstd.Encoder
	enc  *msgpack.Encoder
	tick int
}

func NewRecorder(w io.Writer) (*Recorder, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &Recorder{zw: zw, enc: msgpack.NewEncoder(zw)}, nil
}

// Record appends a frame for the world's current state and the outcome of
// the tick that produced it.
func (r *Recorder) Record(w *World, o Outcome) error {
	r.tick++
	frame := RecordFrame{
		Tick:    r.tick,
		Outcome: o,
		Planes: util.MapSlice(w.PlaneIDs(), func(id byte) Plane {
			return *w.planes[id]
		}),
	}
	return r.enc.Encode(frame)
}

// Close flushes the compressed stream; the recording is not readable
// until it has been called.
func (r *Recorder) Close() error {
	return r.zw.Close()
}

// ReadRecording decodes all frames of a recording written by Recorder.
func ReadRecording(rd io.Reader) ([]RecordFrame, error) {
	zr, err := zstd.NewReader(rd)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	dec := msgpack.NewDecoder(zr)
	var frames []RecordFrame
	for {
		var frame RecordFrame
		if err := dec.Decode(&frame); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, err
		}
		frames = append(frames, frame)
	}
}
