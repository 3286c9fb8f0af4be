// Copyright 2026 go-cordic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixedpoint

import (
	"errors"
	"testing"
)

func TestFormatValidate(t *testing.T) {
	tests := []struct {
		name    string
		f       Format
		wantErr bool
	}{
		{"16.4", Format{16, 4}, false},
		{"integer only", Format{8, 8}, false},
		{"fraction only", Format{8, 0}, false},
		{"zero width", Format{0, 0}, true},
		{"too wide", Format{MaxWidth + 1, 4}, true},
		{"int bits exceed width", Format{8, 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.f.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFormat) {
				t.Errorf("Validate() error %v does not wrap ErrFormat", err)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	f := Format{Width: 18, IntBits: 6}
	if got, want := f.Min(), int64(-131072); got != want {
		t.Errorf("Min() = %d, want %d", got, want)
	}
	if got, want := f.Max(), int64(131071); got != want {
		t.Errorf("Max() = %d, want %d", got, want)
	}
	if got, want := f.Scale(), int64(4096); got != want {
		t.Errorf("Scale() = %d, want %d", got, want)
	}
	if !f.Fits(131071) || f.Fits(131072) || !f.Fits(-131072) || f.Fits(-131073) {
		t.Error("Fits() disagrees with [Min, Max]")
	}
}

func TestWrap(t *testing.T) {
	f := Format{Width: 8, IntBits: 8}
	tests := []struct {
		in, want int64
	}{
		{0, 0},
		{127, 127},
		{128, -128},
		{255, -1},
		{256, 0},
		{-128, -128},
		{-129, 127},
	}
	for _, tt := range tests {
		if got := f.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaturate(t *testing.T) {
	f := Format{Width: 8, IntBits: 8}
	if got := f.Saturate(1000); got != 127 {
		t.Errorf("Saturate(1000) = %d, want 127", got)
	}
	if got := f.Saturate(-1000); got != -128 {
		t.Errorf("Saturate(-1000) = %d, want -128", got)
	}
	if got := f.Saturate(-5); got != -5 {
		t.Errorf("Saturate(-5) = %d, want -5", got)
	}
}

func TestFloatConversion(t *testing.T) {
	f := Format{Width: 16, IntBits: 4}
	if got := f.FromFloat(1.5); got != 6144 {
		t.Errorf("FromFloat(1.5) = %d, want 6144", got)
	}
	if got := f.ToFloat(6144); got != 1.5 {
		t.Errorf("ToFloat(6144) = %v, want 1.5", got)
	}
	// Truncation toward zero, as a C cast does.
	if got := f.FromFloat(-0.00001); got != 0 {
		t.Errorf("FromFloat(-0.00001) = %d, want 0", got)
	}
}

func TestShrFloors(t *testing.T) {
	tests := []struct {
		x    int64
		s    uint
		want int64
	}{
		{7, 1, 3},
		{-7, 1, -4},
		{-1, 3, -1},
		{-8, 3, -1},
		{-9, 3, -2},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := Shr(tt.x, tt.s); got != tt.want {
			t.Errorf("Shr(%d, %d) = %d, want %d", tt.x, tt.s, got, tt.want)
		}
	}
}

func TestBit(t *testing.T) {
	word := uint64(0b1010_0101)
	want := []bool{true, false, true, false, false, true, false, true}
	for i, w := range want {
		if got := Bit(word, uint(i)); got != w {
			t.Errorf("Bit(%08b, %d) = %v, want %v", word, i, got, w)
		}
	}
}

func TestWiden(t *testing.T) {
	f := Format{Width: 16, IntBits: 4}.Widen(2)
	if f.Width != 18 || f.IntBits != 6 || f.FracBits() != 12 {
		t.Errorf("Widen(2) = %v, want 18.6", f)
	}
	if f.String() != "18.6" {
		t.Errorf("String() = %q, want 18.6", f.String())
	}
}
