// Package track holds the board's fixed track graph: 144 locations, one per
// LED, each with up to two successors on its anode side and up to two on its
// cathode side. The table is immutable; every query is a constant-time lookup.
package track

import (
	"fmt"

	"github.com/vovakirdan/trainboard/internal/fault"
)

// Graph dimensions.
const (
	NumLocations = 144
	NumPlatforms = 12
	NumSwitches  = 8
)

// Location is an index into the track graph.
type Location uint8

// None is the sentinel for an unused neighbor slot.
const None Location = 0xFF

// Valid reports whether l addresses a node.
func (l Location) Valid() bool {
	return int(l) < NumLocations
}

func (l Location) String() string {
	if l == None {
		return "none"
	}
	return fmt.Sprintf("0x%02X", uint8(l))
}

// Direction is the side a train exits a node from.
type Direction uint8

const (
	Anode Direction = iota
	Cathode
)

// Opposite returns the other side.
func (d Direction) Opposite() Direction {
	if d == Anode {
		return Cathode
	}
	return Anode
}

func (d Direction) String() string {
	if d == Anode {
		return "anode"
	}
	return "cathode"
}

// Kind classifies a node.
type Kind uint8

const (
	KindTrack Kind = iota
	KindPlatform
)

func (k Kind) String() string {
	if k == KindPlatform {
		return "platform"
	}
	return "track"
}

// entry is a packed table row.
type entry uint32

func (e entry) anode() Location    { return Location(e >> 24) }
func (e entry) cathode() Location  { return Location(e >> 16) }
func (e entry) anode2() Location   { return Location(e >> 8) }
func (e entry) cathode2() Location { return Location(e) }

func (e entry) isPlatform() bool {
	b := e.anode()
	return e.cathode() == b && e.anode2() == b && e.cathode2() == b
}

func lookup(loc Location) entry {
	if !loc.Valid() {
		fault.Raise(fault.CodeNotTrack, "location %s out of range", loc)
	}
	return table[loc]
}

// KindOf returns whether loc is ordinary track or a platform.
func KindOf(loc Location) Kind {
	if lookup(loc).isPlatform() {
		return KindPlatform
	}
	return KindTrack
}

// IsFork reports whether loc is a track node with a second successor on
// either side.
func IsFork(loc Location) bool {
	e := lookup(loc)
	if e.isPlatform() {
		return false
	}
	return e.anode2() != None || e.cathode2() != None
}

// Neighbors returns the primary and secondary successors of a track node on
// side dir. fork is None when that side has no second branch.
func Neighbors(loc Location, dir Direction) (primary, fork Location) {
	e := lookup(loc)
	if e.isPlatform() {
		fault.Raise(fault.CodeNotTrack, "neighbors of platform %s", loc)
	}
	if dir == Anode {
		return e.anode(), e.anode2()
	}
	return e.cathode(), e.cathode2()
}

// Coin decides between the branches of an unswitched fork.
type Coin interface {
	Bool() bool
}

// Next steps from loc out of side dir. At a fork the branch is chosen by a
// coin flip. The returned direction is the side the train will exit the
// new node from.
func Next(loc Location, dir Direction, coin Coin) (Location, Direction) {
	_, fork := Neighbors(loc, dir)
	takeFork := false
	if fork != None {
		takeFork = coin.Bool()
	}
	return NextVia(loc, dir, takeFork)
}

// NextVia steps from loc out of side dir taking the fork branch when
// takeFork is set and the side has one.
func NextVia(loc Location, dir Direction, takeFork bool) (Location, Direction) {
	primary, fork := Neighbors(loc, dir)
	to := primary
	if takeFork && fork != None {
		to = fork
	}
	return to, exitDirection(loc, to)
}

// exitDirection picks the side of to that faces away from from: entering
// through the cathode side means leaving through the anode side.
func exitDirection(from, to Location) Direction {
	e := lookup(to)
	if e.cathode() == from || e.cathode2() == from {
		return Anode
	}
	return Cathode
}

// Lists reports whether target is one of loc's successors on side dir.
func Lists(loc Location, dir Direction, target Location) bool {
	primary, fork := Neighbors(loc, dir)
	return primary == target || (fork != None && fork == target)
}

// AdjacentTrack returns the single track neighbor of a platform.
func AdjacentTrack(platform Location) Location {
	e := lookup(platform)
	if !e.isPlatform() {
		fault.Raise(fault.CodeNotTrack, "%s is not a platform", platform)
	}
	return e.anode()
}

var (
	platformLocs = collect(NumPlatforms, func(e entry) bool { return e.isPlatform() })
	switchLocs   = collect(NumSwitches, func(e entry) bool {
		return !e.isPlatform() && (e.anode2() != None || e.cathode2() != None)
	})
)

func collect(n int, match func(entry) bool) []Location {
	out := make([]Location, 0, n)
	for i, e := range table {
		if match(e) {
			out = append(out, Location(i))
		}
	}
	if len(out) != n {
		panic(fmt.Sprintf("track: table has %d matching nodes, expected %d", len(out), n))
	}
	return out
}

// PlatformLocations returns the platform nodes in index order.
func PlatformLocations() [NumPlatforms]Location {
	var out [NumPlatforms]Location
	copy(out[:], platformLocs)
	return out
}

// SwitchLocations returns the fork nodes in index order.
func SwitchLocations() [NumSwitches]Location {
	var out [NumSwitches]Location
	copy(out[:], switchLocs)
	return out
}
