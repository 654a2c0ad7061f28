package scoring

import (
	"fmt"
	"math"
)

// Weights holds the five category weights a user adjusts independently.
// Each is 0..100 as entered; nothing constrains the raw sum.
type Weights struct {
	Infrastructure int `json:"infrastructure" yaml:"infrastructure"`
	Energy         int `json:"energy" yaml:"energy"`
	Risk           int `json:"risk" yaml:"risk"`
	Socioeconomic  int `json:"socioeconomic" yaml:"socioeconomic"`
	Connectivity   int `json:"connectivity" yaml:"connectivity"`
}

// NumCategories is the number of weight categories. Rounding during
// normalization can move the output sum away from 100 by at most one per
// category.
const NumCategories = 5

// DefaultBaseline returns the fixed distribution the comparison view scores
// against.
func DefaultBaseline() Weights {
	return Weights{
		Infrastructure: 30,
		Energy:         25,
		Risk:           20,
		Socioeconomic:  15,
		Connectivity:   10,
	}
}

// Sum returns the raw total of all categories.
func (w Weights) Sum() int {
	return w.Infrastructure + w.Energy + w.Risk + w.Socioeconomic + w.Connectivity
}

// Validate checks that no category is negative or above 100.
func (w Weights) Validate() error {
	for _, v := range w.asList() {
		if v < 0 || v > 100 {
			return fmt.Errorf("weight out of range: %d", v)
		}
	}
	return nil
}

func (w Weights) asList() []int {
	return []int{w.Infrastructure, w.Energy, w.Risk, w.Socioeconomic, w.Connectivity}
}

// Normalize rescales the weights so they sum to roughly 100 while preserving
// relative proportions. Each category is independently rounded, so the output
// sum may deviate from 100 by up to NumCategories in either direction; no
// remainder redistribution is done.
//
// An all-zero input has no proportions to preserve and would otherwise divide
// by zero; it normalizes to an equal split of 20 per category.
func Normalize(w Weights) Weights {
	total := w.Sum()
	if total == 0 {
		return Weights{
			Infrastructure: 100 / NumCategories,
			Energy:         100 / NumCategories,
			Risk:           100 / NumCategories,
			Socioeconomic:  100 / NumCategories,
			Connectivity:   100 / NumCategories,
		}
	}

	scale := func(v int) int {
		return int(math.Round(float64(v) / float64(total) * 100))
	}
	return Weights{
		Infrastructure: scale(w.Infrastructure),
		Energy:         scale(w.Energy),
		Risk:           scale(w.Risk),
		Socioeconomic:  scale(w.Socioeconomic),
		Connectivity:   scale(w.Connectivity),
	}
}
