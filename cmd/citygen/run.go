package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"citygen/internal/server"
	"citygen/pkg/building"
	"citygen/pkg/engine"
	"citygen/pkg/policy"
	"citygen/pkg/report"
	"citygen/pkg/scene"
	"citygen/pkg/stats"
)

// loadTable resolves the policy table: a project directory when given,
// the compiled-in defaults otherwise.
func loadTable(policyPath string) (*policy.Table, error) {
	if policyPath == "" {
		return policy.Default(), nil
	}
	table, err := policy.LoadProject(policyPath)
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	return table, nil
}

func parseTile(xArg, yArg string) (int, int, error) {
	x, err := strconv.Atoi(xArg)
	if err != nil {
		return 0, 0, fmt.Errorf("tile-x: %w", err)
	}
	y, err := strconv.Atoi(yArg)
	if err != nil {
		return 0, 0, fmt.Errorf("tile-y: %w", err)
	}
	return x, y, nil
}

func collect(gen *engine.Generator, x, y, radius int) ([]building.Descriptor, *report.Report) {
	rep := report.New()
	var all []building.Descriptor
	for ty := y - radius; ty <= y+radius; ty++ {
		for tx := x - radius; tx <= x+radius; tx++ {
			descs, tileRep := gen.Tile(tx, ty)
			all = append(all, descs...)
			rep.Merge(tileRep)
		}
	}
	return all, rep
}

func runGenerate(policyPath string, seed uint64, xArg, yArg string, radius int, asScene bool) error {
	table, err := loadTable(policyPath)
	if err != nil {
		return err
	}
	x, y, err := parseTile(xArg, yArg)
	if err != nil {
		return err
	}

	gen := engine.New(table, seed, 0)
	descs, rep := collect(gen, x, y, radius)

	var output map[string]any
	if asScene {
		graph := scene.Assemble(descs, table, seed)
		rep.Merge(scene.ValidateGraph(graph))
		output = map[string]any{
			"seed":   seed,
			"scene":  graph,
			"report": rep,
		}
	} else {
		output = map[string]any{
			"seed":      seed,
			"buildings": descs,
			"report":    rep,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runClassify(policyPath, xArg, yArg string) error {
	table, err := loadTable(policyPath)
	if err != nil {
		return err
	}
	x, y, err := parseTile(xArg, yArg)
	if err != nil {
		return err
	}

	gen := engine.New(table, 0, 0)
	d := gen.Classify(x, y)
	fmt.Printf("tile (%d, %d): %s\n", x, y, d.Kind)
	return nil
}

func runStats(policyPath string, seed uint64, xArg, yArg string, radius int) error {
	table, err := loadTable(policyPath)
	if err != nil {
		return err
	}
	x, y, err := parseTile(xArg, yArg)
	if err != nil {
		return err
	}

	gen := engine.New(table, seed, 0)
	descs, _ := collect(gen, x, y, radius)

	summary, rep := stats.Summarize(descs, table)
	printSummary(summary)
	if len(rep.Warnings) > 0 {
		fmt.Println()
		printReport(rep)
		return fmt.Errorf("generated output violates population caps")
	}
	return nil
}

func runValidate(policyPath string) error {
	table, err := loadTable(policyPath)
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return fmt.Errorf("policy table invalid: %w", err)
	}
	fmt.Printf("policy table valid: %d districts, version %s\n", len(table.Districts), table.Version)
	return nil
}

func runServe(policyPath string, seed uint64, port int) error {
	table, err := loadTable(policyPath)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return server.New(table, seed, port, log).Start()
}
