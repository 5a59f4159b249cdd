package preview

// blurAlpha blurs a single-channel buffer in place with a separable
// Gaussian. Samples outside the buffer read as zero, so a silhouette fades
// out towards the region border instead of smearing its edge.
func blurAlpha(buf []float32, width, height int, sigma float64) {
	if sigma <= 0 || width == 0 || height == 0 {
		return
	}
	kernel := kernels.get(sigma)
	half := len(kernel) / 2
	temp := make([]float32, len(buf))

	// Horizontal pass
	for y := 0; y < height; y++ {
		row := buf[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= width {
					continue
				}
				sum += row[kx] * w
			}
			temp[y*width+x] = sum
		}
	}

	// Vertical pass
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= height {
					continue
				}
				sum += temp[ky*width+x] * w
			}
			buf[y*width+x] = sum
		}
	}
}
