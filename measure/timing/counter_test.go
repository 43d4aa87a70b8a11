package timing

import (
	"testing"
	"time"
)

func TestElapsedTicks(t *testing.T) {
	tests := []struct {
		name       string
		start, end uint32
		dir        Direction
		want       uint32
	}{
		{"up", 100, 142, CountUp, 42},
		{"down", 142, 100, CountDown, 42},
		{"up idle", 7, 7, CountUp, 0},
		{"down idle", 7, 7, CountDown, 0},
		{"up single wrap", 0xFFFFFFF0, 0x00000010, CountUp, 0x20},
		{"down single wrap", 0x00000010, 0xFFFFFFF0, CountDown, 0x20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedTicks(tt.start, tt.end, tt.dir); got != tt.want {
				t.Fatalf("ElapsedTicks() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if CountUp.String() != "up" || CountDown.String() != "down" {
		t.Fatalf("got %q %q", CountUp, CountDown)
	}
	if Direction(9).String() != "Direction(9)" {
		t.Fatalf("got %q", Direction(9))
	}
}

func TestSequenceCounter(t *testing.T) {
	c := &SequenceCounter{Values: []uint32{5, 9}}
	if c.Read() != 5 || c.Read() != 9 || c.Read() != 9 {
		t.Fatal("SequenceCounter must replay values and repeat the last one")
	}
	if c.Tick() != time.Microsecond {
		t.Fatalf("default tick = %v, want 1us", c.Tick())
	}

	var empty SequenceCounter
	if empty.Read() != 0 {
		t.Fatal("empty SequenceCounter must read 0")
	}
}
