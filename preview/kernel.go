package preview

import (
	"math"
	"sync"
)

// gaussianKernel returns a normalized 1D Gaussian kernel for sigma.
// The kernel spans 2*ceil(3*sigma)+1 taps. sigma <= 0 yields the identity.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache memoizes kernels by sigma quantized to 0.01.
// Shadow layers of one target share a handful of radii across frames.
type kernelCache struct {
	mu      sync.Mutex
	kernels map[int][]float32
	maxLen  int
}

var kernels = &kernelCache{kernels: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.Lock()
	defer c.mu.Unlock()
	if k, ok := c.kernels[key]; ok {
		return k
	}
	if len(c.kernels) >= c.maxLen {
		clear(c.kernels)
	}
	k := gaussianKernel(float64(key) / 100)
	c.kernels[key] = k
	return k
}
