// Command fftpeak transforms a 128-sample block, times the FFT and reports
// the two dominant frequency components.
//
// Usage:
//
//	fftpeak analyze [flags]
//	fftpeak version
//
// Examples:
//
//	fftpeak analyze --tone 1000
//	fftpeak analyze --tone 1000 --tone 2500 --amplitude 0.4 --repeat 100
//	fftpeak analyze --input block.yaml --verify -o yaml
//	FFTPEAK_COUNTER=down fftpeak analyze --tone 750
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
