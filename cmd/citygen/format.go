package main

import (
	"fmt"
	"sort"

	"citygen/pkg/report"
	"citygen/pkg/stats"
)

func printReport(r *report.Report) {
	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Stage, w.Message)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Stage, i.Message)
		}
		fmt.Println()
	}

	fmt.Printf("Result: %s\n", r.Summary)
}

func printSummary(s *stats.Summary) {
	fmt.Println("Population Summary")
	fmt.Println("==================")
	fmt.Println()
	fmt.Printf("  Buildings:        %d\n", s.TotalBuildings)
	fmt.Printf("  Tiles:            %d\n", s.Tiles)
	fmt.Printf("  Density:          %.2f per hectare\n", s.DensityPerHa)
	fmt.Printf("  Points of interest: %d\n", s.POICount)
	fmt.Printf("  Quarantined:      %d\n", s.Quarantined)
	fmt.Printf("  Avg size scale:   %.2f\n", s.AvgSizeScale)
	fmt.Printf("  Avg owner age:    %.1f\n", s.AvgOwnerAge)

	fmt.Println()
	fmt.Println("By type")
	fmt.Println("-------")
	printCountTable(toCounts(s.ByType))

	fmt.Println()
	fmt.Println("By district")
	fmt.Println("-----------")
	printCountTable(toCounts(s.ByDistrict))
}

type count struct {
	label string
	n     int
}

func toCounts[K ~string](m map[K]int) []count {
	rows := make([]count, 0, len(m))
	for k, n := range m {
		rows = append(rows, count{label: string(k), n: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		return rows[i].label < rows[j].label
	})
	return rows
}

func printCountTable(rows []count) {
	for _, row := range rows {
		fmt.Printf("  %-16s %6d\n", row.label, row.n)
	}
}
