package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/fftpeak/dsp/core"
)

const envPrefix = "FFTPEAK"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	out        io.Writer
	log        *zap.SugaredLogger
	configFile string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:   "fftpeak",
		Short: "Fixed-size FFT peak analyzer",
		Long: `fftpeak runs a 128-point radix-2 FFT over one block of 16-bit samples,
measures the transform time with a monotonic counter and reports the two
strongest components below Nyquist.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./fftpeak.yaml or $HOME/.config/fftpeak/fftpeak.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", "table", "output format (table, yaml, json)")
	pf.Float64("sample-rate", core.DefaultSampleRate, "sampling rate in Hz")
	pf.Float64("full-scale", core.DefaultFullScale, "ADC full-scale code magnitude")
	pf.String("counter", "monotonic", "timing counter (monotonic, down)")

	root.AddCommand(newAnalyzeCmd(a), newVersionCmd(a))
	return root
}

// initialize layers defaults, config file, environment and flags, then
// builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	setDefaults(a.v)

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.SetConfigName("fftpeak")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME/.config/fftpeak")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	log, err := newLogger(a.v.GetString("log_level"))
	if err != nil {
		return err
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugw("using config file", "path", used)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "table")
	v.SetDefault("sample_rate", core.DefaultSampleRate)
	v.SetDefault("full_scale", core.DefaultFullScale)
	v.SetDefault("counter", "monotonic")
	v.SetDefault("counter_period", 0)
	v.SetDefault("repeat", 1)
}

// bindFlags binds every flag of cmd (local and inherited) to the config key
// with dashes replaced by underscores.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	})
	return lastErr
}
