package model

import "time"

// Bar represents a single daily candlestick.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is an ordered run of daily bars for one symbol over one lookback period.
type PriceSeries struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
	Bars   []Bar  `json:"bars"`
}

// Len returns the number of bars.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Closes returns a fresh slice of closing prices.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns a fresh slice of volumes.
func (s PriceSeries) Volumes() []float64 {
	vols := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		vols[i] = b.Volume
	}
	return vols
}

// Last returns the most recent bar. The series must not be empty.
func (s PriceSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }
