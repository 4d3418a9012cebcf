package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valentinrusche/opendrive"
)

var (
	outPath string
	step    float64
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "odr2geojson <file.xodr>",
		Short: "Decode an OpenDRIVE document and export its drivable roads as GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&outPath, "out", "", "write the feature collection to this file instead of stdout")
	rootCmd.Flags().Float64Var(&step, "step", 5, "arc sampling distance in meters")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := opendrive.Decode(string(raw), log)
	if err != nil {
		return err
	}
	out, err := opendrive.DrivableGeoJSON(res.Drivable, step)
	if err != nil {
		return err
	}
	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
