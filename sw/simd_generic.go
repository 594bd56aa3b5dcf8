//go:build !noasm && !(amd64 && goexperiment.simd)

package sw

func archKernels() []laneKernel {
	return []laneKernel{newHwyKernel()}
}
