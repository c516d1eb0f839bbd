//go:build verify_hits
// +build verify_hits

package tracer

import (
	"fmt"
	"math"
)

const lengthEpsilon = 1e-7

func init() {
	fmt.Println("Hit verification enabled.")
}

func verifyPrimaryRay(ray Ray) {
	if !isUnit(ray.Direction) {
		panic(fmt.Sprintf("primary ray direction %v is not unit length", ray.Direction))
	}
}

func verifyShadowRay(ray Ray, hitPoint Vector3) {
	if ray.Origin != hitPoint {
		panic("shadow ray must leave from the hit point")
	}
	// A light sitting exactly on the surface yields a zero direction
	if ray.Direction != (Vector3{}) && !isUnit(ray.Direction) {
		panic(fmt.Sprintf("shadow ray direction %v is not unit length", ray.Direction))
	}
}

func isUnit(v Vector3) bool {
	return math.Abs(v.Length()-1.0) < lengthEpsilon
}
