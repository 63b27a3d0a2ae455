package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/nstd-go/circq/internal/queue"
	"github.com/nstd-go/circq/internal/testbench"
	"github.com/nstd-go/circq/pkg/circular"
	"github.com/nstd-go/circq/pkg/config"
	"github.com/nstd-go/circq/pkg/sliceq"
	"github.com/nstd-go/circq/pkg/trivial"
)

// BenchmarkResult holds results for one workload run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Workload       string  `json:"workload"`
	Ops            int64   `json:"ops"`
	Resident       int     `json:"resident"`
	Burst          int     `json:"burst"`
	ActualElapsed  string  `json:"actual_elapsed"`    // measured time
	Throughput     float64 `json:"throughput_ops_sec"`
	FinalCapacity  int     `json:"final_capacity"`
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete bench session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// Implementation represents a queue implementation in the registry. The
// bench fixes the element type to int64 so all implementations run the
// same byte-for-byte workload.
type Implementation struct {
	name        string
	pkgName     string
	description string
	features    []string
	newQueue    func() queue.Interface[int64]
}

// getImplementations enumerates the queue implementations under test.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "GrowableCircularQueue",
			pkgName:     "circular",
			description: "General-purpose circular queue; pops release slot contents so the GC retains nothing dead.",
			features:    []string{"FIFO", "Growable", "Indexed", "Slot-Release"},
			newQueue: func() queue.Interface[int64] {
				return circular.New[int64]()
			},
		},
		{
			name:        "TrivialCircularQueue",
			pkgName:     "trivial",
			description: "Pointer-free fast path; no slot cleanup on pop and constant-time clear.",
			features:    []string{"FIFO", "Growable", "Indexed", "O(1)-Clear"},
			newQueue: func() queue.Interface[int64] {
				return trivial.New[int64]()
			},
		},
		{
			name:        "SliceQueue",
			pkgName:     "sliceq",
			description: "Naive slice-backed baseline; appends at the tail and advances a head index.",
			features:    []string{"FIFO", "Indexed", "Baseline"},
			newQueue: func() queue.Interface[int64] {
				return sliceq.New[int64]()
			},
		},
	}
}

// outputMarkdownTable loads the JSON file and outputs a Markdown table
// summarising the last session.
func outputMarkdownTable(jsonFile string) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file %q: %v\n", jsonFile, err)
		os.Exit(1)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling JSON: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found in JSON.")
		os.Exit(1)
	}
	lastSession := sessions[len(sessions)-1]

	// Best throughput per implementation per workload.
	type key struct{ impl, workload string }
	best := make(map[key]float64)
	workloadSet := map[string]bool{}
	for _, bench := range lastSession.Benchmarks {
		k := key{bench.Implementation, bench.Workload}
		if bench.Throughput > best[k] {
			best[k] = bench.Throughput
		}
		workloadSet[bench.Workload] = true
	}
	var workloads []string
	for w := range workloadSet {
		workloads = append(workloads, w)
	}
	sort.Strings(workloads)

	fmt.Println("## Last Session Benchmark Summary")
	fmt.Println()
	fmt.Printf("| Implementation          | Package  | Features                              |")
	for _, w := range workloads {
		fmt.Printf(" %s (ops/sec) |", w)
	}
	fmt.Println()
	fmt.Printf("|-------------------------|----------|---------------------------------------|")
	for range workloads {
		fmt.Printf("---|")
	}
	fmt.Println()
	for _, impl := range getImplementations() {
		fmt.Printf("| %-23s | %-8s | %-37s |", impl.name, impl.pkgName, strings.Join(impl.features, ", "))
		for _, w := range workloads {
			fmt.Printf(" %.0f |", best[key{impl.name, w}])
		}
		fmt.Println()
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	numCPU := runtime.NumCPU()
	goArch := runtime.GOARCH

	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      numCPU,
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      goArch,
		TotalMemory: totalMemory,
	}
}

func main() {
	// Flags.
	iterFlag := flag.Int("iter", 0, "Override the suite's iteration count (0 keeps the suite value)")
	suiteFile := flag.String("suite", "", "Path to a YAML workload suite; built-in suite if empty")
	jsonExport := flag.Bool("json", false, "Export results as JSON to bench-results.json")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from bench-results.json and exit")
	jsonFileForMarkdown := flag.String("jsonfile", "bench-results.json", "Path to JSON file for markdown table")
	progressFlag := flag.Bool("progress", false, "Display a progress bar")
	flag.Parse()

	if *markdownTable {
		outputMarkdownTable(*jsonFileForMarkdown)
		return
	}

	suite := config.DefaultSuite()
	if *suiteFile != "" {
		var err error
		suite, err = config.Load(*suiteFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading suite: %v\n", err)
			os.Exit(1)
		}
	}
	if *iterFlag > 0 {
		suite.Iterations = *iterFlag
	}

	impls := getImplementations()
	totalTests := len(suite.Workloads) * suite.Iterations * len(impls)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
		)
	}

	sysInfo := gatherSystemInfo()
	var results []BenchmarkResult

	for _, workload := range suite.Workloads {
		fmt.Printf("\n[Workload: %s ops=%d resident=%d burst=%d]\n",
			workload.Name, workload.Ops, workload.Resident, workload.Burst)
		for iteration := 1; iteration <= suite.Iterations; iteration++ {
			fmt.Printf("  iteration %d/%d\n", iteration, suite.Iterations)
			for _, impl := range impls {
				runtime.GC()
				q := impl.newQueue()

				ops, actualTime := testbench.RunWorkload[int64, queue.Interface[int64]](
					q,
					workload,
					func(i int) int64 { return int64(i) },
				)
				throughput := float64(ops) / actualTime.Seconds()

				fmt.Printf("  %s => ops=%d, throughput=%.0f ops/s, took=%v, final-cap=%d\n",
					impl.name, ops, throughput, actualTime, q.Cap())

				results = append(results, BenchmarkResult{
					Implementation: impl.name,
					Workload:       workload.Name,
					Ops:            ops,
					Resident:       workload.Resident,
					Burst:          workload.Burst,
					ActualElapsed:  actualTime.String(),
					Throughput:     throughput,
					FinalCapacity:  q.Cap(),
					Timestamp:      time.Now().Unix(),
					GoVersion:      runtime.Version(),
				})

				if bar != nil {
					bar.Add(1)
				}
			}
		}
	}

	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	session := FullReport{
		SessionTime: time.Now().Format(time.RFC3339),
		SystemInfo:  sysInfo,
		Benchmarks:  results,
	}

	// If JSON export is requested, append the new session to bench-results.json.
	if *jsonExport {
		const filename = "bench-results.json"
		var previous []FullReport
		if _, err := os.Stat(filename); err == nil {
			data, err := os.ReadFile(filename)
			if err == nil && len(data) > 0 {
				json.Unmarshal(data, &previous)
			}
		}
		updated := append(previous, session)
		data, err := json.MarshalIndent(updated, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error marshalling JSON:", err)
			os.Exit(1)
		}
		if err = os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing JSON file:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", filename)
	}
}
