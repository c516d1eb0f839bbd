//go:build !verify_hits
// +build !verify_hits

package tracer

// Empty stubs that will be optimized out
func verifyPrimaryRay(Ray) {}

func verifyShadowRay(Ray, Vector3) {}
