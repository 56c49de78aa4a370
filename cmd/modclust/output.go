// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modclust/agglomerative"
	"github.com/katalvlaran/modclust/graphio"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report is the json/yaml shape of a run.
type report struct {
	RunID             string     `json:"run_id" yaml:"run_id"`
	Input             string     `json:"input" yaml:"input"`
	Strategy          string     `json:"strategy" yaml:"strategy"`
	Vertices          int        `json:"vertices" yaml:"vertices"`
	Edges             int        `json:"edges" yaml:"edges"`
	SelfLoops         int        `json:"self_loops" yaml:"self_loops"`
	Duplicates        int        `json:"duplicates" yaml:"duplicates"`
	Components        int        `json:"components" yaml:"components"`
	LargestComponent  int        `json:"largest_component" yaml:"largest_component"`
	Merges            int        `json:"merges" yaml:"merges"`
	InitialModularity float64    `json:"initial_modularity" yaml:"initial_modularity"`
	Modularity        float64    `json:"modularity" yaml:"modularity"`
	DurationSeconds   float64    `json:"duration_seconds" yaml:"duration_seconds"`
	Sizes             []int      `json:"sizes" yaml:"sizes"`
	Clusters          [][]string `json:"clusters" yaml:"clusters"`
}

func newReport(runID, input string, d *graphio.Dataset, res *agglomerative.Result) report {
	clusters := res.Partition.Clusters()
	named := make([][]string, len(clusters))
	for k, c := range clusters {
		named[k] = make([]string, len(c))
		for x, v := range c {
			named[k][x] = d.Labels[v]
		}
	}

	return report{
		RunID:             runID,
		Input:             input,
		Strategy:          res.Strategy.String(),
		Vertices:          d.Graph.VertexCount(),
		Edges:             d.Graph.EdgeCount(),
		SelfLoops:         d.SelfLoops,
		Duplicates:        d.Duplicates,
		Components:        res.Components,
		LargestComponent:  res.LargestComponent,
		Merges:            len(res.Merges),
		InitialModularity: res.InitialModularity,
		Modularity:        res.Modularity,
		DurationSeconds:   res.Duration.Seconds(),
		Sizes:             res.Partition.Sizes(),
		Clusters:          named,
	}
}

// writeResult renders res in format to w.
func writeResult(w io.Writer, format string, rep report, d *graphio.Dataset, res *agglomerative.Result) error {
	switch format {
	case formatText:
		return graphio.WriteClusters(w, res.Partition, d.Labels)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
