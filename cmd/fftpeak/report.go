package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/fftpeak/dsp/spectrum"
	"github.com/cwbudde/fftpeak/measure/analysis"
)

type peakReport struct {
	Bin         int     `json:"bin" yaml:"bin"`
	FrequencyHz float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Magnitude   float64 `json:"magnitude" yaml:"magnitude"`
}

type verifyReport struct {
	MaxBinError float64 `json:"max_bin_error" yaml:"max_bin_error"`
	PeakError   float64 `json:"peak_error" yaml:"peak_error"`
}

type report struct {
	SampleRate float64       `json:"sample_rate" yaml:"sample_rate"`
	Counter    string        `json:"counter" yaml:"counter"`
	Primary    peakReport    `json:"primary" yaml:"primary"`
	Secondary  peakReport    `json:"secondary" yaml:"secondary"`
	Timing     summary       `json:"timing" yaml:"timing"`
	Verify     *verifyReport `json:"verify,omitempty" yaml:"verify,omitempty"`
}

func newReport(res analysis.Result, counter string, elapsed []float64) report {
	return report{
		SampleRate: res.SampleRate,
		Counter:    counter,
		Primary:    toPeakReport(res.Peaks.Primary),
		Secondary:  toPeakReport(res.Peaks.Secondary),
		Timing:     summarize(elapsed),
	}
}

func toPeakReport(p spectrum.Peak) peakReport {
	return peakReport{Bin: p.Bin, FrequencyHz: p.FrequencyHz, Magnitude: p.Magnitude}
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "table", "":
		return writeTable(w, rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", format)
	}
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PEAK\tBIN\tFREQUENCY\tMAGNITUDE\tLEVEL\n")
	for _, row := range []struct {
		name string
		p    peakReport
	}{{"primary", rep.Primary}, {"secondary", rep.Secondary}} {
		level := spectrum.Peak{Magnitude: row.p.Magnitude}.LevelDB()
		fmt.Fprintf(tw, "%s\t%d\t%.1f Hz\t%.4f\t%.1f dBFS\n", row.name, row.p.Bin, row.p.FrequencyHz, row.p.Magnitude, level)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := rep.Timing
	if t.Runs == 1 {
		fmt.Fprintf(w, "\nfft time: %.3f us (%s counter)\n", t.Mean, rep.Counter)
	} else {
		fmt.Fprintf(w, "\nfft time over %d runs (%s counter): min %.3f us  mean %.3f us  stddev %.3f us  max %.3f us\n",
			t.Runs, rep.Counter, t.Min, t.Mean, t.StdDev, t.Max)
	}

	if rep.Verify != nil {
		fmt.Fprintf(w, "verify: max bin error %.3g, peak error %.3g\n", rep.Verify.MaxBinError, rep.Verify.PeakError)
	}
	return nil
}
