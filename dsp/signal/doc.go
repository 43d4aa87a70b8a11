// Package signal converts fixed-point ADC blocks into transform input and
// synthesizes deterministic fixed-point test blocks.
package signal
