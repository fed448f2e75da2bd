package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/akasprzok/chartfmt"
	"github.com/akasprzok/chartfmt/internal/tables"
	"gopkg.in/yaml.v2"
)

const dateArgLayout = "2006-01-02"

type TicksCmd struct {
	From     string `name:"from" help:"Range start (YYYY-MM-DD)." required:"true"`
	To       string `name:"to" help:"Range end (YYYY-MM-DD)." required:"true"`
	MaxTicks int    `name:"maxticks" help:"Major tick count hint." default:"10" env:"CHARTFMT_MAXTICKS"`
	Output   string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (t *TicksCmd) Run(ctx *Context) error {
	from, err := time.Parse(dateArgLayout, t.From)
	if err != nil {
		return fmt.Errorf("parsing from date: %w", err)
	}
	to, err := time.Parse(dateArgLayout, t.To)
	if err != nil {
		return fmt.Errorf("parsing to date: %w", err)
	}

	plan := chartfmt.PlanDateTicks(from, to, t.MaxTicks)
	dump := dumpPlan(plan, from, to)
	ctx.Logger.WithField("granularity", plan.Granularity).Debug("planned ticks")

	switch t.Output {
	case "table":
		fmt.Printf("granularity: %s  layout: %s  minor grid: %t\n",
			dump.Granularity, dump.Layout, dump.MinorGrid)
		fmt.Println(tables.TickPlan(plan))
	case "json":
		jsonBytes, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling plan to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("marshalling plan to YAML: %w", err)
		}
		fmt.Println(string(yamlBytes))
	}
	return nil
}

type tickPlanDump struct {
	Granularity string   `json:"granularity" yaml:"granularity"`
	DaySpan     int      `json:"day_span" yaml:"day_span"`
	Layout      string   `json:"layout" yaml:"layout"`
	MinorGrid   bool     `json:"minor_grid" yaml:"minor_grid"`
	Major       []string `json:"major" yaml:"major"`
	Minor       []string `json:"minor" yaml:"minor"`
}

func dumpPlan(plan chartfmt.DateTickPlan, from, to time.Time) tickPlanDump {
	dump := tickPlanDump{
		Granularity: plan.Granularity.String(),
		DaySpan:     int(to.Sub(from).Hours() / 24),
		Layout:      plan.Layout,
		MinorGrid:   plan.MinorGrid,
		Major:       make([]string, 0, len(plan.Major)),
		Minor:       make([]string, 0, len(plan.Minor)),
	}
	for _, tick := range plan.Major {
		dump.Major = append(dump.Major, tick.Format(plan.Layout))
	}
	for _, tick := range plan.Minor {
		dump.Minor = append(dump.Minor, tick.Format(plan.Layout))
	}
	return dump
}
