package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patterndb/projection"
	"github.com/katalvlaran/patterndb/selection"
	"github.com/katalvlaran/patterndb/task"
)

// unreachable replaces projection.Infinity in written distance tables.
const unreachable = -1

// report is the YAML document written by the select command.
type report struct {
	Status           string          `yaml:"status"`
	Patterns         []patternReport `yaml:"patterns"`
	TotalSize        int64           `yaml:"total_size"`
	ResidualCosts    []int           `yaml:"residual_costs"`
	InitialHeuristic *int            `yaml:"initial_heuristic,omitempty"`
	InitialDeadEnd   bool            `yaml:"initial_dead_end,omitempty"`
}

type patternReport struct {
	Variables []int    `yaml:"variables,flow"`
	Names     []string `yaml:"names,omitempty,flow"`
	Size      int      `yaml:"size"`
	Distances []int    `yaml:"distances,omitempty,flow"`
}

func newReport(tk *task.Task, res *selection.Result, withDistances bool) *report {
	rep := &report{
		Status:        res.Status.String(),
		TotalSize:     res.Collection.TotalSize(),
		ResidualCosts: res.Costs,
	}
	for _, proj := range res.Collection.Projections() {
		pr := patternReport{Variables: proj.Pattern(), Size: proj.NumStates()}
		for _, v := range proj.Pattern() {
			if name := tk.Variables[v].Name; name != "" {
				pr.Names = append(pr.Names, name)
			}
		}
		if len(pr.Names) != len(pr.Variables) {
			pr.Names = nil
		}
		if withDistances {
			pr.Distances = make([]int, len(proj.Distances()))
			for i, d := range proj.Distances() {
				if d == projection.Infinity {
					d = unreachable
				}
				pr.Distances[i] = d
			}
		}
		rep.Patterns = append(rep.Patterns, pr)
	}
	if tk.InitialState != nil {
		if res.Collection.IsDeadEnd(tk.InitialState) {
			rep.InitialDeadEnd = true
		} else {
			h := res.Collection.Sum(tk.InitialState)
			rep.InitialHeuristic = &h
		}
	}

	return rep
}

// Write encodes the report as YAML.
func (r *report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}
