//go:build noasm

package sw

func archKernels() []laneKernel {
	return nil
}
