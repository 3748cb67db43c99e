package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alifrahmanhakim/AOC-RBS/internal/domain"
	"github.com/alifrahmanhakim/AOC-RBS/internal/findings"
	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

// operatorFile is the YAML (or JSON) document read by compute.
type operatorFile struct {
	Name                   string                    `yaml:"name"`
	Inputs                 rbs.Inputs                `yaml:",inline"`
	Legacy                 *domain.LegacyRiskFactors `yaml:"legacyRiskFactors"`
	EconomicFactors        *domain.EconomicFactors   `yaml:"economicFactors"`
	EconomicIndicatorScore *float64                  `yaml:"economicIndicatorScore"`
}

type computeOutput struct {
	Name     string             `json:"name,omitempty" yaml:"name,omitempty"`
	RBS      domain.RbsResult   `json:"rbs" yaml:"rbs"`
	Legacy   *domain.LegacyRisk `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Economic *float64           `json:"economicIndicatorScore,omitempty" yaml:"economicIndicatorScore,omitempty"`
}

func readOperatorFile(path string, stdin io.Reader) (operatorFile, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return operatorFile{}, fmt.Errorf("read inputs: %w", err)
	}
	var f operatorFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return operatorFile{}, fmt.Errorf("parse inputs: %w", err)
	}
	return f, nil
}

func (a *app) computeCmd() *cobra.Command {
	var (
		file   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the RBS result for an operator input file",
		Example: `  rbsctl compute -f garuda.yaml
  cat garuda.json | rbsctl compute -f - -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readOperatorFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := a.engine.ComputeRBS(in.Inputs)
			if err != nil {
				return err
			}
			out := computeOutput{Name: in.Name, RBS: res}
			if in.Legacy != nil {
				legacy, err := a.engine.ComputeLegacyRisk(*in.Legacy)
				if err != nil {
					return err
				}
				out.Legacy = &legacy
			}
			if out.Economic, err = rbs.EconomicIndicator(in.EconomicIndicatorScore, in.EconomicFactors); err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, out, printCompute)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "operator input file (YAML or JSON), - for stdin")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printCompute(w io.Writer, v any) {
	out := v.(computeOutput)
	r := out.RBS
	if out.Name != "" {
		color.New(color.Bold).Fprintln(w, out.Name)
	}
	fmt.Fprintf(w, "exposure:     %.4f (%s, %s)\n", r.ExposureScore, r.ExposureLevel, r.ExposureLevel.Label())
	fmt.Fprintf(w, "C(p):         %.6f\n", r.ComplianceScore)
	fmt.Fprintf(w, "D(p):         %.6f\n", r.DeviationScore)
	fmt.Fprintf(w, "I(p):         %.6f\n", r.ImprovementScore)
	fmt.Fprintf(w, "F(P):         %.6f\n", r.PerformanceScore)
	fmt.Fprintf(w, "indicator:    %d (%s)\n", r.IndicatorLevel, r.IndicatorLabel)
	fmt.Fprint(w, "category:     ")
	zoneColor(r.Zone).Fprintf(w, "%s (%s zone)\n", r.CategoryKey, r.Zone)
	fmt.Fprintf(w, "cycle:        every %d months\n", r.SuggestedCycleMonths)
	if out.Legacy != nil {
		fmt.Fprintf(w, "legacy:       %d (%s)\n", out.Legacy.Score, out.Legacy.Level)
	}
	if out.Economic != nil {
		fmt.Fprintf(w, "economic:     %.2f\n", *out.Economic)
	}
}

func (a *app) cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cycle LEVEL EXPOSURE",
		Short:   "Resolve the surveillance cycle for an indicator level and exposure letter",
		Example: "  rbsctl cycle 3 C",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("level %q: %w", args[0], err)
			}
			cell, err := a.engine.Cell(domain.IndicatorLevel(level), domain.ExposureLevel(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			zoneColor(cell.Zone).Fprintf(w, "%s", cell.Key)
			fmt.Fprintf(w, ": every %d months (%s zone)\n", cell.Months, cell.Zone)
			return nil
		},
	}
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the surveillance cycle matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprint(w, "     ")
			for _, exp := range domain.ExposureLevels {
				fmt.Fprintf(w, "%5s", exp)
			}
			fmt.Fprintln(w)
			for level := domain.IndicatorVeryLow; level <= domain.IndicatorVeryHigh; level++ {
				fmt.Fprintf(w, "%5d", level)
				for _, exp := range domain.ExposureLevels {
					cell, err := a.engine.Cell(level, exp)
					if err != nil {
						return err
					}
					zoneColor(cell.Zone).Fprintf(w, "%5d", cell.Months)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func (a *app) targetDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "target-date DATE CATEGORY",
		Short:   "Derive a finding's target completion date",
		Example: "  rbsctl target-date 2024-01-01 2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return &rbs.InvalidInputError{Field: "dateAdded", Reason: err.Error()}
			}
			category, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("category %q: %w", args[1], err)
			}
			fm, err := findings.NewManager(findings.DefaultPolicy(), time.Now)
			if err != nil {
				return err
			}
			target, err := fm.TargetDate(added, domain.FindingCategoryLevel(category))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target.Format(time.DateOnly))
			return nil
		},
	}
}

func (a *app) legacyCmd() *cobra.Command {
	var frequency, environment, occurrences int
	cmd := &cobra.Command{
		Use:     "legacy",
		Short:   "Compute the legacy weighted risk score",
		Example: "  rbsctl legacy --frequency 3 --environment 2 --occurrences 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := a.engine.LegacyScore(frequency, environment, occurrences)
			if err != nil {
				return err
			}
			level, err := a.engine.ClassifyLegacy(score)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d ", score)
			levelColor(level).Fprintln(w, level)
			return nil
		},
	}
	cmd.Flags().IntVar(&frequency, "frequency", 1, "aircraft frequency (1-5)")
	cmd.Flags().IntVar(&environment, "environment", 1, "environmental complexity (1-5)")
	cmd.Flags().IntVar(&occurrences, "occurrences", 0, "occurrences score (sum of severity weights)")
	return cmd
}

func (a *app) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the scoring tables in effect as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.engine.Tables()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func render(w io.Writer, format string, v any, text func(io.Writer, any)) error {
	switch format {
	case "text", "":
		text(w, v)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		return yaml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func zoneColor(z domain.RiskZone) *color.Color {
	switch z {
	case domain.ZoneLow:
		return color.New(color.FgGreen)
	case domain.ZoneMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func levelColor(l domain.RiskLevel) *color.Color {
	switch l {
	case domain.RiskLow:
		return color.New(color.FgGreen)
	case domain.RiskMedium:
		return color.New(color.FgYellow)
	case domain.RiskHigh:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiRed, color.Bold)
	}
}
