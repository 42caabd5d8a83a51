// Package station models the physical picking stations of the warehouse.
//
// A Table is a picking station with a unique name. A Cell is a slot that holds placed
// items; it belongs to at most one table at a time and moves to whichever table the
// last placement named. The picking queue only hands a table the orders whose
// placements sit in cells currently attached to it.
package station
