package types

// Empty is a zero-sized placeholder for the value slot of map-backed sets.
type Empty struct{}

// Void is the only value of the Empty type.
var Void = Empty{}
