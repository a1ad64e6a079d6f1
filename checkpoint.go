/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gorolling

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// checkpointState is the wire layout of a saved roller
type checkpointState struct {
	ID         string          `msgpack:"id"`
	Mode       int8            `msgpack:"mode"`
	Window     int             `msgpack:"window"`
	MinPeriods int             `msgpack:"min_periods"`
	Position   int             `msgpack:"position"`
	Thresholds []int           `msgpack:"thresholds"`
	Entries    []PriorityEntry `msgpack:"entries"`
}

// WriteCheckpoint saves the roller's full state to [writer], msgpack
// encoded and compressed with the option's codec
func (r *Roller) WriteCheckpoint(writer io.Writer) error {
	state := checkpointState{
		ID:         r.ID(),
		Mode:       int8(r.option.mode),
		Window:     r.option.window,
		MinPeriods: r.option.minPeriods,
		Position:   r.position,
		Thresholds: r.thresholds,
		Entries:    r.list.Snapshot(),
	}

	raw, err := msgpack.Marshal(&state)
	if err != nil {
		return err
	}

	_, err = writer.Write(r.option.compression.Encode(raw))
	return err
}

// saves the checkpoint to c_<id>.ckpt under [path]
func (r *Roller) SaveCheckpoint(path string) error {
	f, err := os.OpenFile(filepath.Join(path, fmt.Sprintf("c_%s.ckpt", r.ID())), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if r.option.logger != nil {
		r.option.logger.Printf("checkpoint %s: %d live entries at position %d", r.ID(), r.list.GetSize(), r.position)
	}

	return r.WriteCheckpoint(f)
}

// ReadCheckpoint rebuilds a roller from a checkpoint written with
// WriteCheckpoint. [option] supplies the logger, codec and tuning knobs,
// its window, mode, min periods and id are overwritten from the
// checkpoint. The stored entries are ascending, so reinserting from the
// largest down always hits the O(1) head path and reproduces the stored
// tie order.
func ReadCheckpoint(reader io.Reader, option *RollerOption) (*Roller, error) {
	blob, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	raw, err := option.compression.Decode(blob)
	if err != nil {
		return nil, err
	}

	var state checkpointState
	if err := msgpack.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("error parsing checkpoint: %w", err)
	}

	option.SetMode(PriorityMode(state.Mode))
	option.SetWindow(state.Window)
	option.SetMinPeriods(state.MinPeriods)
	option.SetID(state.ID)

	roller := NewRoller(option)
	roller.position = state.Position
	roller.thresholds = state.Thresholds
	for i := len(state.Entries) - 1; i >= 0; i-- {
		roller.list.Insert(state.Entries[i].Value, state.Entries[i].Death)
	}

	if option.logger != nil {
		option.logger.Printf("restored %s: %d live entries at position %d", state.ID, len(state.Entries), state.Position)
	}

	return roller, nil
}

// loads the checkpoint c_<id>.ckpt from [path]
func LoadCheckpoint(path string, id string, option *RollerOption) (*Roller, error) {
	f, err := os.Open(filepath.Join(path, fmt.Sprintf("c_%s.ckpt", id)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCheckpoint(f, option)
}

// deletes the checkpoint c_<id>.ckpt from [path]
func DeleteCheckpoint(path string, id string) error {
	return os.Remove(filepath.Join(path, fmt.Sprintf("c_%s.ckpt", id)))
}
