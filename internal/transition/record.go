package transition

import (
	"github.com/google/uuid"

	"github.com/joe/magnify/pkg/magnification"
)

// record is the state of one in-flight transition.
type record struct {
	id       string
	callback magnification.TransitionCallback
	display  magnification.DisplayID
	target   magnification.Mode
	source   magnification.Mode
	scale    float64
	center   magnification.Point

	// expired is one-way. An expired record never calls back and is not in the registry.
	expired bool
}

func newRecord(
	callback magnification.TransitionCallback,
	display magnification.DisplayID,
	target magnification.Mode,
	scale float64,
	center magnification.Point,
) *record {
	return &record{
		id:       uuid.NewString(),
		callback: callback,
		display:  display,
		target:   target,
		source:   target.Other(),
		scale:    scale,
		center:   center,
	}
}

// registry maps each display to its in-flight record. Absent means idle.
type registry struct {
	records map[magnification.DisplayID]*record
}

func newRegistry() registry {
	return registry{records: make(map[magnification.DisplayID]*record)}
}

func (r registry) get(display magnification.DisplayID) *record {
	return r.records[display]
}

func (r registry) put(rec *record) {
	r.records[rec.display] = rec
}

// remove clears the slot of rec's display if rec still occupies it.
func (r registry) remove(rec *record) {
	if r.records[rec.display] == rec {
		delete(r.records, rec.display)
	}
}

func (r registry) len() int {
	return len(r.records)
}
