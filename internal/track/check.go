package track

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Check validates the table invariants: references in range, platforms
// attached to a single track node, reciprocal edges, and every track node
// reachable from location 0. It returns all violations joined.
func Check() error {
	var errs []error

	for i, e := range table {
		loc := Location(i)
		if e.isPlatform() {
			adj := e.anode()
			if !adj.Valid() {
				errs = append(errs, fmt.Errorf("platform %s: neighbor %s out of range", loc, adj))
				continue
			}
			if table[adj].isPlatform() {
				errs = append(errs, fmt.Errorf("platform %s: neighbor %s is a platform", loc, adj))
			}
			continue
		}

		if e.anode() == None || e.cathode() == None {
			errs = append(errs, fmt.Errorf("track %s: missing primary neighbor", loc))
			continue
		}
		for _, n := range []Location{e.anode(), e.cathode(), e.anode2(), e.cathode2()} {
			if n == None {
				continue
			}
			if !n.Valid() {
				errs = append(errs, fmt.Errorf("track %s: neighbor %s out of range", loc, n))
				continue
			}
			if table[n].isPlatform() {
				errs = append(errs, fmt.Errorf("track %s: lists platform %s", loc, n))
				continue
			}
			if !Lists(n, Anode, loc) && !Lists(n, Cathode, loc) {
				errs = append(errs, fmt.Errorf("track %s: edge to %s is not reciprocal", loc, n))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	reached := Reachable(0)
	for i, e := range table {
		if !e.isPlatform() && !reached.Has(Location(i)) {
			errs = append(errs, fmt.Errorf("track %s: unreachable from 0x00", Location(i)))
		}
	}
	return errors.Join(errs...)
}

// Reachable returns the set of track nodes connected to start.
func Reachable(start Location) mapset.Set[Location] {
	visited := mapset.New[Location]()
	queue := []Location{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)

		for _, dir := range []Direction{Anode, Cathode} {
			primary, fork := Neighbors(cur, dir)
			for _, n := range []Location{primary, fork} {
				if n != None && !visited.Has(n) {
					queue = append(queue, n)
				}
			}
		}
	}
	return visited
}
