package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fftpeak/dsp/core"
	"github.com/cwbudde/fftpeak/dsp/signal"
	"github.com/cwbudde/fftpeak/measure/analysis"
	"github.com/cwbudde/fftpeak/measure/timing"
)

type analyzeFlags struct {
	input     string
	tones     []float64
	amplitude float64
	dc        float64
	noise     float64
	seed      int64
	verify    bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Transform one block and report its two dominant components",
		Long: `Transform one 128-sample block and report the two strongest components
in bins 1..63 together with the FFT execution time.

The block is read from a YAML file (--input) or synthesized from tones.
Without either, a 1000 Hz tone is analyzed.

Examples:
  fftpeak analyze --tone 1000
  fftpeak analyze --tone 750 --tone 3000 --amplitude 0.3 --dc 0.1
  fftpeak analyze --input block.yaml --verify --output json
  fftpeak analyze --tone 1000 --repeat 1000 --counter down`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAnalyze(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "YAML file with samples and optional sample_rate")
	fl.Float64SliceVarP(&f.tones, "tone", "t", nil, "tone frequency in Hz (repeatable)")
	fl.Float64VarP(&f.amplitude, "amplitude", "a", 0.5, "amplitude of each tone relative to full scale")
	fl.Float64Var(&f.dc, "dc", 0, "DC offset relative to full scale")
	fl.Float64Var(&f.noise, "noise", 0, "uniform noise amplitude relative to full scale")
	fl.Int64Var(&f.seed, "seed", 1, "noise seed")
	fl.Int("repeat", 1, "number of timed runs")
	fl.Uint32("counter-period", 0, "reload period of the down counter in ticks (0 = full 32-bit range)")
	fl.BoolVar(&f.verify, "verify", false, "cross-check the transform against a reference FFT")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, f analyzeFlags) error {
	logFeatures(a.log)

	sampleRate := a.v.GetFloat64("sample_rate")
	fullScale := a.v.GetFloat64("full_scale")
	repeat := a.v.GetInt("repeat")
	if repeat < 1 {
		return fmt.Errorf("repeat must be >= 1: %d", repeat)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %g", sampleRate)
	}
	if fullScale <= 0 {
		return fmt.Errorf("full scale must be > 0: %g", fullScale)
	}

	var raw *signal.RawBlock
	if f.input != "" {
		if len(f.tones) > 0 {
			return fmt.Errorf("--input and --tone are mutually exclusive")
		}
		block, fileRate, err := loadInput(f.input)
		if err != nil {
			return err
		}
		if fileRate > 0 && !cmd.Flags().Changed("sample-rate") {
			sampleRate = fileRate
		}
		raw = block
		a.log.Debugw("loaded input", "path", f.input, "sampleRate", sampleRate)
	} else {
		block, err := synthesize(f, sampleRate, fullScale)
		if err != nil {
			return err
		}
		raw = block
	}

	counterName := strings.ToLower(a.v.GetString("counter"))
	counter, err := newCounter(counterName, a.v.GetUint32("counter_period"))
	if err != nil {
		return err
	}

	run := analysis.New(counter, core.WithSampleRate(sampleRate), core.WithFullScale(fullScale))

	elapsed := make([]float64, repeat)
	var res analysis.Result
	for i := range elapsed {
		res = run.Analyze(raw)
		elapsed[i] = res.ElapsedMicros()
	}
	a.log.Debugw("analysis complete",
		"runs", repeat,
		"primaryBin", res.Peaks.Primary.Bin,
		"secondaryBin", res.Peaks.Secondary.Bin,
	)

	rep := newReport(res, counterName, elapsed)

	if f.verify {
		v, err := analysis.NewVerifier()
		if err != nil {
			return err
		}
		vr, err := v.Verify(run, raw, res)
		if err != nil {
			return err
		}
		rep.Verify = &verifyReport{MaxBinError: vr.MaxBinError, PeakError: vr.PeakError(res)}
		if vr.MaxBinError > verifyTolerance {
			a.log.Warnw("transform deviates from reference", "maxBinError", vr.MaxBinError)
		}
	}

	return writeReport(a.out, a.v.GetString("output"), rep)
}

// verifyTolerance bounds the expected float32 deviation between the two
// transforms for full-scale input.
const verifyTolerance = 1e-3

func synthesize(f analyzeFlags, sampleRate, fullScale float64) (*signal.RawBlock, error) {
	tones := f.tones
	if len(tones) == 0 {
		tones = []float64{1000}
	}

	mix := signal.Mix{DC: f.dc, Noise: f.noise}
	for _, hz := range tones {
		mix.Tones = append(mix.Tones, signal.Component{FrequencyHz: hz, Amplitude: f.amplitude})
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.AnalysisOption{core.WithSampleRate(sampleRate), core.WithFullScale(fullScale)},
		signal.WithSeed(f.seed),
	)
	raw, err := gen.Synthesize(mix)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return raw, nil
}

func newCounter(name string, period uint32) (timing.Counter, error) {
	switch name {
	case "monotonic", "":
		return timing.NewMonotonic(), nil
	case "down":
		return timing.NewDownCounter(timing.NewMonotonic(), period), nil
	default:
		return nil, fmt.Errorf("unknown counter %q (want monotonic or down)", name)
	}
}
