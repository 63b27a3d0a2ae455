package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// BenchmarkResult holds one benchmark result, matching the cmd/bench schema.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Workload       string  `json:"workload"`
	Ops            int64   `json:"ops"`
	Resident       int     `json:"resident"`
	Burst          int     `json:"burst"`
	ActualElapsed  string  `json:"actual_elapsed"`
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

// median returns the middle value of vals; vals is sorted in place.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2
	}
	return vals[mid]
}

func main() {
	jsonFile := flag.String("jsonfile", "bench-results.json", "Path to JSON file containing bench sessions")
	output := flag.String("out", "benchmark_graph.png", "Output graph image filename")
	flag.Parse()

	data, err := os.ReadFile(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON file: %v\n", err)
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

	// Collect throughput samples per implementation per workload; the bars
	// show the median over iterations.
	samples := make(map[string]map[string][]float64)
	workloadSet := map[string]bool{}
	var implOrder []string
	for _, bench := range lastSession.Benchmarks {
		if samples[bench.Implementation] == nil {
			samples[bench.Implementation] = make(map[string][]float64)
			implOrder = append(implOrder, bench.Implementation)
		}
		samples[bench.Implementation][bench.Workload] = append(
			samples[bench.Implementation][bench.Workload], bench.Throughput)
		workloadSet[bench.Workload] = true
	}
	var workloads []string
	for w := range workloadSet {
		workloads = append(workloads, w)
	}
	sort.Strings(workloads)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Queue throughput by workload (%s, %d CPU)",
		lastSession.SystemInfo.GOARCH, lastSession.SystemInfo.NumCPU)
	p.Y.Label.Text = "ops/sec (median)"

	barWidth := vg.Points(18)
	for i, implName := range implOrder {
		values := make(plotter.Values, len(workloads))
		for j, w := range workloads {
			values[j] = median(samples[implName][w])
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building bar chart: %v\n", err)
			os.Exit(1)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * vg.Length(i-len(implOrder)/2)
		p.Add(bars)
		p.Legend.Add(implName, bars)
	}
	p.Legend.Top = true
	p.NominalX(workloads...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving graph: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote graph to %s\n", *output)
}
