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
	"log"
)

type RollerOption struct {
	window           int
	minPeriods       int
	mode             PriorityMode
	capacityHint     int
	expireBatchLimit int
	logger           *log.Logger
	compression      Compression
	id               *string
}

func NewRollerOption() *RollerOption {
	return &RollerOption{
		window:           1,
		minPeriods:       1,
		mode:             MIN,
		capacityHint:     0,
		expireBatchLimit: DefaultExpireBatchLimit,
		compression:      NewSnappyCompression(),
	}
}

// sets how many observations one window spans
func (i *RollerOption) SetWindow(window int) {
	i.window = window
}

func (i *RollerOption) GetWindow() int {
	return i.window
}

// sets how many live observations a window needs before Push reports a
// result
func (i *RollerOption) SetMinPeriods(minPeriods int) {
	i.minPeriods = minPeriods
}

func (i *RollerOption) GetMinPeriods() int {
	return i.minPeriods
}

// selects whether the roller tracks the window minimum or maximum
func (i *RollerOption) SetMode(mode PriorityMode) {
	i.mode = mode
}

func (i *RollerOption) GetMode() PriorityMode {
	return i.mode
}

// pre-seeds the node free stack of the underlying list, defaults to the
// window size when unset
func (i *RollerOption) SetCapacityHint(capacityHint int) {
	i.capacityHint = capacityHint
}

// overrides how many entries one expiry pass may remove
func (i *RollerOption) SetExpireBatchLimit(expireBatchLimit int) {
	i.expireBatchLimit = expireBatchLimit
}

func (i *RollerOption) SetLogger(logger *log.Logger) {
	i.logger = logger
}

// sets the codec used for checkpoint blobs
func (i *RollerOption) SetCompression(compression Compression) {
	i.compression = compression
}

// sets the roller id used in checkpoint file names
func (i *RollerOption) SetID(id string) {
	i.id = &id
}
