// Package main runs reproducible count and iteration throughput measurements for utfrange.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/kpumuk/utfrange"
)

const (
	setASCII     = "ascii"
	setCJK       = "cjk"
	setEmoji     = "emoji"
	setMixed     = "mixed"
	setMalformed = "malformed"
)

var syntheticUnits = map[string]string{
	setASCII: "The quick brown fox jumps over the lazy dog. ",
	setCJK:   "あいうえおかきくけこ漢字仮名交じり文。",
	setEmoji: "😀😃😄😁🚀🌍",
	setMixed: "naïve café – 東京 🚀 ok; ",
}

type config struct {
	iterations int
	warmup     int
	sizeKB     int
	jsonPath   string
}

type sampleStats struct {
	Samples  int     `json:"samples"`
	P50US    float64 `json:"p50_us"`
	P95US    float64 `json:"p95_us"`
	MinUS    float64 `json:"min_us"`
	MaxUS    float64 `json:"max_us"`
	MeanUS   float64 `json:"mean_us"`
	P50MBps  float64 `json:"p50_mb_per_s"`
	AllocsOp float64 `json:"allocs_per_op"`
}

type benchSetReport struct {
	Set        string      `json:"set"`
	Inputs     int         `json:"inputs"`
	Bytes      int         `json:"bytes"`
	CodePoints int         `json:"code_points"`
	Iterations int         `json:"iterations"`
	Stats      sampleStats `json:"stats"`
	Notes      []string    `json:"notes,omitempty"`
}

type report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	GoVersion   string           `json:"go_version"`
	GOOS        string           `json:"goos"`
	GOARCH      string           `json:"goarch"`
	CPUs        int              `json:"cpus"`
	Config      map[string]any   `json:"config"`
	SizeBench   []benchSetReport `json:"size_bench"`
	IterBench   []benchSetReport `json:"iter_bench"`
}

type input struct {
	name string
	src  []byte
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "perf-report: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.iterations, "iterations", 50, "benchmark iterations per input")
	flag.IntVar(&cfg.warmup, "warmup", 3, "warmup iterations per input")
	flag.IntVar(&cfg.sizeKB, "size-kb", 256, "size of each synthetic input in KiB")
	flag.StringVar(&cfg.jsonPath, "json", "", "optional JSON report output path")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.iterations <= 0 {
		return errors.New("iterations must be > 0")
	}
	if cfg.warmup < 0 {
		return errors.New("warmup must be >= 0")
	}
	if cfg.sizeKB <= 0 {
		return errors.New("size-kb must be > 0")
	}

	corpus, err := buildCorpus(cfg.sizeKB * 1024)
	if err != nil {
		return err
	}

	sets := []string{setASCII, setCJK, setEmoji, setMixed, setMalformed}
	rep := report{
		GeneratedAt: time.Now().UTC(),
		GoVersion:   runtime.Version(),
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		CPUs:        runtime.NumCPU(),
		Config: map[string]any{
			"iterations": cfg.iterations,
			"warmup":     cfg.warmup,
			"size_kb":    cfg.sizeKB,
		},
	}
	for _, set := range sets {
		rep.SizeBench = append(rep.SizeBench, benchmarkSet(set, corpus[set], cfg, sizeOnce))
		rep.IterBench = append(rep.IterBench, benchmarkSet(set, corpus[set], cfg, iterateOnce))
	}

	printReport(rep)
	if cfg.jsonPath != "" {
		if err := writeJSON(cfg.jsonPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nJSON report written to %s\n", cfg.jsonPath)
	}
	return nil
}

// buildCorpus repeats each synthetic unit up to size bytes and adds the
// repository's malformed fixtures.
func buildCorpus(size int) (map[string][]input, error) {
	corpus := make(map[string][]input, len(syntheticUnits)+1)
	for set, unit := range syntheticUnits {
		src := []byte(strings.Repeat(unit, max(1, size/len(unit))))
		corpus[set] = []input{{name: set, src: src}}
	}

	root, err := findRepoRoot()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(root, "testdata", "utf8", "invalid")
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		// Prefix with valid text so the scan has work before the failure.
		prefixed := append([]byte(strings.Repeat(syntheticUnits[setMixed], max(1, size/4/len(syntheticUnits[setMixed])))), src...)
		corpus[setMalformed] = append(corpus[setMalformed], input{name: filepath.Base(path), src: prefixed})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.SortFunc(corpus[setMalformed], func(a, b input) int { return strings.Compare(a.name, b.name) })
	return corpus, nil
}

func sizeOnce(src []byte) int {
	n, _ := utfrange.New(src).Size()
	return n
}

func iterateOnce(src []byte) int {
	n := 0
	for it := utfrange.New(src).Begin(); it.Next(); {
		n++
	}
	return n
}

func benchmarkSet(set string, inputs []input, cfg config, op func([]byte) int) benchSetReport {
	var (
		samples    []time.Duration
		notes      []string
		totalBytes int
		codePoints int
		allocs     float64
	)
	for _, in := range inputs {
		for range cfg.warmup {
			op(in.src)
		}

		var (
			before, after runtime.MemStats
			n             int
		)
		runtime.ReadMemStats(&before)
		for range cfg.iterations {
			start := time.Now()
			n = op(in.src)
			samples = append(samples, time.Since(start))
		}
		runtime.ReadMemStats(&after)
		allocs += float64(after.Mallocs-before.Mallocs) / float64(cfg.iterations)

		totalBytes += len(in.src)
		codePoints += n
		if rng := utfrange.New(in.src); !rng.IsValid() {
			notes = append(notes, fmt.Sprintf("%s stops at byte %d", in.name, rng.ValidPrefix()))
		}
	}
	if len(notes) > 3 {
		notes = append(notes[:3:3], fmt.Sprintf("... and %d more", len(notes)-3))
	}

	stats := durationStats(samples)
	if len(inputs) > 0 {
		stats.AllocsOp = allocs / float64(len(inputs))
		if stats.P50US > 0 {
			stats.P50MBps = float64(totalBytes/len(inputs)) / stats.P50US
		}
	}
	return benchSetReport{
		Set:        set,
		Inputs:     len(inputs),
		Bytes:      totalBytes,
		CodePoints: codePoints,
		Iterations: cfg.iterations,
		Stats:      stats,
		Notes:      notes,
	}
}

func durationStats(samples []time.Duration) sampleStats {
	if len(samples) == 0 {
		return sampleStats{}
	}
	ns := make([]int64, len(samples))
	var sum int64
	for i, d := range samples {
		ns[i] = d.Nanoseconds()
		sum += ns[i]
	}
	slices.Sort(ns)
	return sampleStats{
		Samples: len(samples),
		P50US:   nanosToUS(quantile(ns, 0.50)),
		P95US:   nanosToUS(quantile(ns, 0.95)),
		MinUS:   nanosToUS(ns[0]),
		MaxUS:   nanosToUS(ns[len(ns)-1]),
		MeanUS:  nanosToUS(sum / int64(len(ns))),
	}
}

func quantile(sorted []int64, q float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * q)
	return sorted[idx]
}

func nanosToUS(ns int64) float64 {
	return float64(ns) / float64(time.Microsecond)
}

func printReport(rep report) {
	fmt.Printf("utfrange Performance Report\n")
	fmt.Printf("Generated: %s\n", rep.GeneratedAt.Format(time.RFC3339))
	fmt.Printf("Go: %s | %s/%s | CPUs=%d\n", rep.GoVersion, rep.GOOS, rep.GOARCH, rep.CPUs)
	fmt.Println()
	printBenchTable("Range.Size (cold range per op)", rep.SizeBench)
	fmt.Println()
	printBenchTable("Iterator.Next over whole range", rep.IterBench)
}

func printBenchTable(title string, rows []benchSetReport) {
	fmt.Println(title)
	fmt.Println("set        inputs    bytes  p50(us)  p95(us)  mean(us)   MB/s  allocs/op")
	for _, r := range rows {
		fmt.Printf("%-10s %6d %8d %8.1f %8.1f %9.1f %6.0f %10.1f\n",
			r.Set, r.Inputs, r.Bytes, r.Stats.P50US, r.Stats.P95US, r.Stats.MeanUS, r.Stats.P50MBps, r.Stats.AllocsOp)
		for _, n := range r.Notes {
			fmt.Printf("  - %s\n", n)
		}
	}
}

func writeJSON(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o600)
}

func findRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("repository root not found")
		}
		dir = parent
	}
}
