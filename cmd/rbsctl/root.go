package main

import (
	"github.com/spf13/cobra"

	"github.com/alifrahmanhakim/AOC-RBS/internal/rbs"
)

type app struct {
	tablesFile string
	engine     *rbs.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "rbsctl",
		Short:         "Risk-based surveillance scoring",
		Long:          `Computes RBS scores, surveillance cycles, finding target dates and legacy risk scores offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadEngine()
		},
	}
	root.PersistentFlags().StringVar(&a.tablesFile, "tables", "", "YAML file overriding the default scoring tables")

	root.AddCommand(
		a.computeCmd(),
		a.cycleCmd(),
		a.matrixCmd(),
		a.targetDateCmd(),
		a.legacyCmd(),
		a.tablesCmd(),
	)
	return root
}

func (a *app) loadEngine() error {
	t := rbs.DefaultTables()
	if a.tablesFile != "" {
		var err error
		if t, err = rbs.LoadTables(a.tablesFile); err != nil {
			return err
		}
	}
	e, err := rbs.NewEngine(t)
	if err != nil {
		return err
	}
	a.engine = e
	return nil
}
