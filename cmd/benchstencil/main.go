// Command benchstencil micro-benchmarks the CPU stencil kernels across a
// range of grid sizes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-diff/internal/cpu"
	"github.com/cwbudde/algo-diff/internal/kernels"
)

func main() {
	var (
		sizeList = flag.String("sizes", "64,256,1024,4096", "comma-separated 1D sizes (2D runs use size×size grids)")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s vector=%s iters=%d warmup=%d\n",
		features.Architecture, features.Describe(), *iters, *warmup)
	fmt.Printf("%10s  %-18s  %12s\n", "size", "kernel", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))
	for _, n := range sizes {
		src := randomSlice(rnd, n)
		dst := make([]float64, n)
		report(n, "forward_diff", bench(*iters, *warmup, func() {
			kernels.ForwardDiff(dst, src)
		}))
		report(n, "forward_diff_adj", bench(*iters, *warmup, func() {
			kernels.ForwardDiffAdjoint(dst, src)
		}))

		grid := randomSlice(rnd, n*n)
		gx := make([]float64, n*n)
		gy := make([]float64, n*n)
		report(n, "forward_diff_2d", bench(*iters, *warmup, func() {
			kernels.ForwardDiff2D(gx, gy, grid, n, n)
		}))
		acc := make([]float64, n*n)
		report(n, "forward_diff_2d_adj", bench(*iters, *warmup, func() {
			kernels.ForwardDiff2DAdjoint(acc, gx, gy, n, n)
		}))
	}
}

func parseSizes(list string) []int {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 2 {
			fmt.Printf("skipping invalid size %q\n", field)
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}

func randomSlice(rnd *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rnd.NormFloat64()
	}
	return out
}

func bench(iters, warmup int, fn func()) float64 {
	for i := 0; i < warmup; i++ {
		fn()
	}
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func report(size int, kernel string, nsPerOp float64) {
	fmt.Printf("%10d  %-18s  %12.1f\n", size, kernel, nsPerOp)
}
