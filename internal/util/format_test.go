package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMlToLiters(t *testing.T) {
	tests := []struct {
		ml   float64
		want float64
	}{
		{ml: 1500, want: 1.5},
		{ml: 250, want: 0.25},
		{ml: 2000, want: 2},
		{ml: 1234, want: 1.23},
		{ml: 1235, want: 1.24},
		{ml: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MlToLiters(tt.ml), "ml=%v", tt.ml)
	}
}

func TestLitersToMl(t *testing.T) {
	assert.Equal(t, 1500, LitersToMl(1.5))
	assert.Equal(t, 250, LitersToMl(0.25))
	assert.Equal(t, 0, LitersToMl(0))
}

func TestMlToCups(t *testing.T) {
	tests := []struct {
		name    string
		ml      float64
		cupSize float64
		want    float64
	}{
		{name: "two standard cups", ml: 500, cupSize: 250, want: 2},
		{name: "half cup", ml: 125, cupSize: 250, want: 0.5},
		{name: "rounded to one decimal", ml: 500, cupSize: 330, want: 1.5},
		{name: "zero cup size", ml: 500, cupSize: 0, want: 0},
		{name: "negative cup size", ml: 500, cupSize: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MlToCups(tt.ml, tt.cupSize))
		})
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		ml   float64
		want string
	}{
		{ml: 250, want: "250 ml"},
		{ml: 999, want: "999 ml"},
		{ml: 0, want: "0 ml"},
		{ml: -500, want: "-500 ml"},
		{ml: 1000, want: "1 L"},
		{ml: 1500, want: "1.5 L"},
		{ml: 2000, want: "2 L"},
		{ml: 2345, want: "2.35 L"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVolume(tt.ml), "ml=%v", tt.ml)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "250.5", FormatAmount(250.5))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75.0%", FormatPercent(75))
	assert.Equal(t, "83.3%", FormatPercent(83.33))
	assert.Equal(t, "125.0%", FormatPercent(125))
}
