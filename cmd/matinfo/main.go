// Command matinfo reports which matrix kernel backend the running CPU
// selects and measures the blocked multiply against a float64 reference.
//
// Usage:
//
//	matinfo [flags]
//
// Examples:
//
//	matinfo
//	matinfo -sizes 64,256,512 -block 64
//	matinfo -generic
//	matinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	syscpu "golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
	"github.com/cwbudde/algo-matrix/internal/reference"
)

type config struct {
	sizes []int
	block int
	seed  int64
}

func main() {
	sizes := flag.String("sizes", "32,64,128,256", "comma-separated square matrix sizes")
	block := flag.Int("block", kernel.DefaultBlockSize, "tile edge for the blocked multiply")
	generic := flag.Bool("generic", false, "force the scalar backend")
	list := flag.Bool("list", false, "list registered kernel backends")
	seed := flag.Int64("seed", 1, "seed for the random operands")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: matinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the selected kernel backend and multiply accuracy/throughput.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList(os.Stdout, registry.Global.ListEntries())
		return
	}

	parsed, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if *block < 1 {
		fmt.Fprintf(os.Stderr, "error: -block must be positive, got %d\n", *block)
		os.Exit(2)
	}

	// Must happen before the first kernel call; the backend is chosen once.
	if *generic {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
	}

	if err := run(os.Stdout, config{sizes: parsed, block: *block, seed: *seed}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func printList(w io.Writer, entries []registry.OpEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Backend\tLevel\tLanes\tPriority\tSupported\n")
	fmt.Fprintf(tw, "-------\t-----\t-----\t--------\t---------\n")
	features := cpu.DetectFeatures()
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%t\n",
			e.Name, e.SIMDLevel, e.Lanes, e.Priority, cpu.Supports(features, e.SIMDLevel))
	}
	_ = tw.Flush()
}

func printCPU(w io.Writer) {
	fmt.Fprintf(w, "GOARCH:   %s\n", runtime.GOARCH)
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(w, "CPU:      sse2=%t avx=%t avx2=%t fma=%t\n",
			syscpu.X86.HasSSE2, syscpu.X86.HasAVX, syscpu.X86.HasAVX2, syscpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintf(w, "CPU:      asimd=%t fphp=%t sve=%t\n",
			syscpu.ARM64.HasASIMD, syscpu.ARM64.HasFPHP, syscpu.ARM64.HasSVE)
	}
	fmt.Fprintf(w, "Backend:  %s (%d lanes)\n", kernel.Implementation(), kernel.Lanes())
}

func run(w io.Writer, cfg config) error {
	printCPU(w)
	fmt.Fprintf(w, "Block:    %d\n\n", cfg.block)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Size\tTime\tGFLOP/s\tMax Abs Err\tMax Rel Err\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t-------\t-----------\t-----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, n := range cfg.sizes {
		r, err := measure(n, cfg.block, cfg.seed)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%v\t%.3f\t%.3e\t%.3e\n",
			n, r.elapsed.Round(time.Microsecond), r.gflops, r.absErr, r.relErr); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

type result struct {
	elapsed time.Duration
	gflops  float64
	absErr  float64
	relErr  float64
}

func measure(n, block int, seed int64) (result, error) {
	rng := rand.New(rand.NewSource(seed))
	a := operand(rng, n*n)
	b := operand(rng, n*n)
	out := make([]float32, n*n)

	start := time.Now()
	kernel.BlockedMultiplyBlock(out, a, b, n, n, n, block)
	elapsed := time.Since(start)

	want := reference.Multiply(a, b, n, n, n)
	absErr, err := reference.MaxAbsDiff(out, want)
	if err != nil {
		return result{}, err
	}

	r := result{elapsed: elapsed, absErr: absErr}
	if peak := reference.MaxAbs(want); peak > 0 {
		r.relErr = absErr / peak
	}
	if secs := elapsed.Seconds(); secs > 0 {
		r.gflops = 2 * float64(n) * float64(n) * float64(n) / secs / 1e9
	}
	return r, nil
}

// operand returns n values drawn uniformly from [-1, 1).
func operand(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}
