package entity

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/trainboard/internal/led"
	"github.com/vovakirdan/trainboard/internal/track"
)

func locations(t *Train) []track.Location {
	out := make([]track.Location, t.Len())
	for i := range out {
		out[i] = t.Car(i).Loc
	}
	return out
}

func TestInitCarsTrailsBehind(t *testing.T) {
	train := NewTrain(make([]Car, MaxCars), 5, 0x20, Empty(), 0)
	train.InitCars(Empty(), 3, 5, fixedCoin(false))

	want := []track.Location{0x20, 0x1F, 0x1E}
	if diff := cmp.Diff(want, locations(train)); diff != "" {
		t.Errorf("car locations diff (-want +got):\n%s", diff)
	}
}

func TestAddCarRespectsMax(t *testing.T) {
	train := NewTrain(make([]Car, 3), 10, 0x20, Empty(), 0)
	if train.MaxCars() != 3 {
		t.Fatalf("MaxCars() = %d, expected storage cap 3", train.MaxCars())
	}
	for i := 0; i < 2; i++ {
		if !train.AddCar(Empty(), fixedCoin(false)) {
			t.Fatalf("AddCar() #%d rejected", i+1)
		}
	}
	if train.AddCar(Empty(), fixedCoin(false)) {
		t.Error("AddCar() accepted a car past the maximum")
	}
	if !train.Full() || train.Len() != 3 {
		t.Errorf("Len() = %d, Full() = %v", train.Len(), train.Full())
	}
}

func TestAdvanceStoppedTrain(t *testing.T) {
	train := NewTrain(make([]Car, 4), 4, 0x20, Empty(), 0)
	train.InitCars(Empty(), 3, 4, fixedCoin(false))
	before := locations(train)

	for i := 0; i < 500; i++ {
		if train.Advance(CoinRouter{fixedCoin(false)}) {
			t.Fatalf("stopped train moved on tick %d", i)
		}
	}
	if diff := cmp.Diff(before, locations(train)); diff != "" {
		t.Errorf("stopped train changed (-before +after):\n%s", diff)
	}
}

func TestAdvanceAccumulator(t *testing.T) {
	tests := []struct {
		speed uint8
		moves []int // ticks (1-based) on which the train should move
	}{
		{10, []int{10, 20}},
		{30, []int{4, 7, 10, 14, 17, 20}},
		{100, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{250, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("speed %d", tc.speed), func(t *testing.T) {
			train := NewTrain(make([]Car, 1), 1, 0x20, Empty(), tc.speed)
			var got []int
			for tick := 1; tick <= 20; tick++ {
				if train.Advance(CoinRouter{fixedCoin(false)}) {
					got = append(got, tick)
				}
				if train.phase >= MaxSpeed {
					t.Fatalf("accumulator = %d after tick %d", train.phase, tick)
				}
			}
			if diff := cmp.Diff(tc.moves, got); diff != "" {
				t.Errorf("move ticks diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvanceChainContinuity(t *testing.T) {
	train := NewTrain(make([]Car, 6), 6, 0x06, Empty(), 100)
	train.InitCars(Empty(), 5, 6, fixedCoin(false))

	for step := 0; step < 30; step++ {
		old := locations(train)
		wantFront, _ := track.NextVia(old[0], train.Direction(), false)

		if !train.Advance(CoinRouter{fixedCoin(false)}) {
			t.Fatalf("train at full speed did not move on step %d", step)
		}
		got := locations(train)
		if got[0] != wantFront {
			t.Fatalf("step %d: front = %s, expected %s", step, got[0], wantFront)
		}
		for i := 1; i < len(got); i++ {
			if got[i] != old[i-1] {
				t.Fatalf("step %d: car %d = %s, expected %s", step, i, got[i], old[i-1])
			}
		}
	}
}

func TestSetSpeedClamps(t *testing.T) {
	train := NewTrain(make([]Car, 1), 1, 0x20, Empty(), 200)
	if train.Speed() != MaxSpeed {
		t.Errorf("Speed() = %d, expected %d", train.Speed(), MaxSpeed)
	}
}

func TestLoadUnloadCargo(t *testing.T) {
	train := NewTrain(make([]Car, 3), 3, 0x20, Empty(), 0)
	train.InitCars(Empty(), 2, 3, fixedCoin(false))

	a, b := Have(led.Blink1), Have(led.Blink3)
	if !train.LoadCargo(a) || !train.LoadCargo(b) {
		t.Fatal("LoadCargo() rejected with empty cars available")
	}
	if train.LoadCargo(Have(led.Fade1)) {
		t.Error("LoadCargo() accepted with every car loaded")
	}
	if !train.Carries(b) {
		t.Error("Carries() = false after loading")
	}

	if train.UnloadCargo(Have(led.Fade1)) {
		t.Error("UnloadCargo() matched cargo the train does not carry")
	}
	if !train.UnloadCargo(b) {
		t.Fatal("UnloadCargo() rejected carried cargo")
	}
	if train.Car(1).Cargo != Empty() || train.Car(0).Cargo != a {
		t.Errorf("cars after unload = %v, %v", train.Car(0).Cargo, train.Car(1).Cargo)
	}
}

func TestAtLocation(t *testing.T) {
	train := NewTrain(make([]Car, 3), 3, 0x20, Empty(), 0)
	train.InitCars(Empty(), 3, 3, fixedCoin(false))
	if !train.AtLocation(0x1E) || train.AtLocation(0x21) {
		t.Errorf("AtLocation() wrong for %v", locations(train))
	}
	if train.Front() != 0x20 || train.Caboose() != 0x1E {
		t.Errorf("Front/Caboose = %s/%s", train.Front(), train.Caboose())
	}
}

func TestCarPhase(t *testing.T) {
	if got := CarPhase(250, 1); got != 10 {
		t.Errorf("CarPhase(250, 1) = %d, expected 10", got)
	}
}
