package entity

import (
	"github.com/vovakirdan/trainboard/internal/core"
	"github.com/vovakirdan/trainboard/internal/track"
)

// MaxCars is the largest train the car arena can hold.
const MaxCars = 60

// Train speed bounds. Speed is the percentage of a location advanced per
// tick.
const (
	MinSpeed = 0
	MaxSpeed = 100
)

// Car is one occupied location of a train.
type Car struct {
	Loc   track.Location
	Cargo Cargo
}

// Router picks where the engine goes next.
type Router interface {
	Route(loc track.Location, dir track.Direction) (track.Location, track.Direction)
}

// CoinRouter follows the track and flips a coin at every fork.
type CoinRouter struct {
	Coin track.Coin
}

func (r CoinRouter) Route(loc track.Location, dir track.Direction) (track.Location, track.Direction) {
	return track.Next(loc, dir, r.Coin)
}

// Train is an engine (car 0) followed by its cars. Car storage is supplied
// by the caller and never grows.
type Train struct {
	storage []Car
	cars    []Car
	maxCars int
	dir     track.Direction
	speed   uint8
	phase   uint8
	prev    track.Location
}

// NewTrain places a single car train at loc heading out of its anode side.
// maxCars is capped by the storage length.
func NewTrain(storage []Car, maxCars int, loc track.Location, cargo Cargo, speed uint8) *Train {
	t := &Train{storage: storage, dir: track.Anode}
	t.reset(loc, cargo, maxCars)
	t.SetSpeed(speed)
	return t
}

func (t *Train) reset(loc track.Location, cargo Cargo, maxCars int) {
	if maxCars > len(t.storage) {
		maxCars = len(t.storage)
	}
	if maxCars < 1 {
		maxCars = 1
	}
	t.maxCars = maxCars
	t.cars = t.storage[:1]
	t.cars[0] = Car{Loc: loc, Cargo: cargo}
	t.phase = 0
	t.prev = track.None
}

// InitCars rebuilds the train as n cars trailing from the current engine
// position. Forks behind the train are resolved with coin.
func (t *Train) InitCars(cargo Cargo, n, maxCars int, coin track.Coin) {
	t.reset(t.Front(), cargo, maxCars)
	for i := 1; i < n; i++ {
		if !t.AddCar(cargo, coin) {
			break
		}
	}
}

// AddCar appends a car behind the caboose. It returns false when the train
// is already at its maximum length.
func (t *Train) AddCar(cargo Cargo, coin track.Coin) bool {
	if len(t.cars) >= t.maxCars {
		return false
	}
	tail := t.cars[len(t.cars)-1].Loc

	back := t.dir.Opposite()
	if len(t.cars) > 1 {
		// Walk away from the car in front of the caboose.
		prev := t.cars[len(t.cars)-2].Loc
		back = track.Anode
		if track.Lists(tail, track.Anode, prev) {
			back = track.Cathode
		}
	}
	loc, _ := track.Next(tail, back, coin)

	t.cars = t.storage[:len(t.cars)+1]
	t.cars[len(t.cars)-1] = Car{Loc: loc, Cargo: cargo}
	return true
}

func (t *Train) Len() int                   { return len(t.cars) }
func (t *Train) MaxCars() int               { return t.maxCars }
func (t *Train) Full() bool                 { return len(t.cars) >= t.maxCars }
func (t *Train) Direction() track.Direction { return t.dir }
func (t *Train) Speed() uint8               { return t.speed }
func (t *Train) Front() track.Location      { return t.cars[0].Loc }
func (t *Train) Caboose() track.Location    { return t.cars[len(t.cars)-1].Loc }

// Previous is where the engine was before the last move, or None.
func (t *Train) Previous() track.Location { return t.prev }

// Car returns car i, engine first.
func (t *Train) Car(i int) Car { return t.cars[i] }

// Cars returns the live car slice. Callers must not append to it.
func (t *Train) Cars() []Car { return t.cars }

// SetDirection sets the side the engine exits from.
func (t *Train) SetDirection(dir track.Direction) { t.dir = dir }

// SetSpeed clamps and sets the speed.
func (t *Train) SetSpeed(s uint8) {
	t.speed = core.Clamp(s, MinSpeed, MaxSpeed)
}

// AtLocation reports whether any car occupies loc.
func (t *Train) AtLocation(loc track.Location) bool {
	for _, c := range t.cars {
		if c.Loc == loc {
			return true
		}
	}
	return false
}

// Advance accumulates speed and, once a full location has built up, moves
// every car into the spot of the car ahead while the engine follows r.
// It reports whether the train moved.
func (t *Train) Advance(r Router) bool {
	t.phase += t.speed
	if t.phase < MaxSpeed {
		return false
	}
	t.phase -= MaxSpeed

	t.prev = t.cars[0].Loc
	for i := len(t.cars) - 1; i > 0; i-- {
		t.cars[i].Loc = t.cars[i-1].Loc
	}
	t.cars[0].Loc, t.dir = r.Route(t.cars[0].Loc, t.dir)
	return true
}

// LoadCargo puts c into the first empty car.
func (t *Train) LoadCargo(c Cargo) bool {
	for i := range t.cars {
		if t.cars[i].Cargo.IsEmpty() {
			t.cars[i].Cargo = c
			return true
		}
	}
	return false
}

// UnloadCargo empties the first car carrying c.
func (t *Train) UnloadCargo(c Cargo) bool {
	for i := range t.cars {
		if t.cars[i].Cargo == c {
			t.cars[i].Cargo = Empty()
			return true
		}
	}
	return false
}

// Carries reports whether any car holds c.
func (t *Train) Carries(c Cargo) bool {
	for _, car := range t.cars {
		if car.Cargo == c {
			return true
		}
	}
	return false
}

// CarPhase is the animation phase of car i given the shared phase.
func CarPhase(global uint8, i int) uint8 {
	return global + uint8(16*i)
}
