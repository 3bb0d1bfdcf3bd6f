package myrandom

import "math/rand"

//go:generate mockgen -source=api.go -package myrandom -destination randomizer_mock.go Randomizer
type Randomizer interface {
	Float64() float64
	IntN(n int) int
}

type RealRandomizer struct{}

func (r RealRandomizer) Float64() float64 {
	return rand.Float64()
}

func (r RealRandomizer) IntN(n int) int {
	return rand.Intn(n)
}
