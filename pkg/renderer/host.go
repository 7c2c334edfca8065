package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// DefaultWorkers returns the number of logical CPUs, falling back to
// runtime.NumCPU when the host cannot be queried.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		logger.Debugf("cpu count unavailable (%v), using runtime.NumCPU", err)
		return runtime.NumCPU()
	}
	return n
}

// FrameBytes returns the memory needed for the colour buffer and the 8-bit image
func FrameBytes(width, height int) uint64 {
	pixels := uint64(width) * uint64(height)
	return pixels * (3*8 + 4) // float64 RGB plus RGBA bytes
}

// CheckMemory warns when a frame would use more than half of the available memory
func CheckMemory(width, height int) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("memory stats unavailable: %v", err)
		return
	}

	need := FrameBytes(width, height)
	if need > vm.Available/2 {
		logger.Warningf("a %dx%d frame needs %d MiB, only %d MiB available",
			width, height, need>>20, vm.Available>>20)
	}
}
