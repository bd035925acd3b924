package plan

import (
	"errors"
	"fmt"
	"math"
)

// Plan is an ordered sequence of per-step write sizes in whole megabytes.
// For bounded strategies the sizes sum exactly to the requested total and
// every size is at least one megabyte. A Plan is built once and never
// modified afterwards.
type Plan []int64

// Strategy names accepted by Compute.
const (
	StrategyFixed     = "fixed"
	StrategyFibonacci = "fib"
)

// ErrTotalTooSmall is returned when the requested total cannot give every
// step at least one megabyte.
var ErrTotalTooSmall = errors.New("total must be at least one megabyte per step")

// Compute builds a bounded plan using the named strategy.
func Compute(strategy string, totalMB, steps int64) (Plan, error) {
	switch strategy {
	case StrategyFixed:
		return Fixed(totalMB, steps)
	case StrategyFibonacci:
		return Fibonacci(totalMB, steps)
	default:
		return nil, fmt.Errorf("unknown strategy '%s' (available: %v)", strategy, Strategies())
	}
}

// Strategies returns the list of bounded strategy names.
func Strategies() []string {
	return []string{StrategyFixed, StrategyFibonacci}
}

// Fixed splits totalMB into steps equal shares. The integer-division
// remainder is added to the final step so the plan sums exactly to totalMB.
func Fixed(totalMB, steps int64) (Plan, error) {
	if err := checkBounded(totalMB, steps); err != nil {
		return nil, err
	}

	base := totalMB / steps
	remainder := totalMB % steps

	p := make(Plan, steps)
	for i := range p {
		p[i] = base
	}
	p[steps-1] += remainder
	return p, nil
}

// maxFibonacciSteps bounds the sequence length so the float64 weights stay
// finite; fib(1477) overflows float64.
const maxFibonacciSteps = 1000

// Fibonacci produces step sizes proportional to the Fibonacci sequence
// 1, 1, 2, 3, 5, ... of length steps, scaled so the plan sums exactly to
// totalMB. Each size is floor-rounded and the rounding remainder is added
// to the final step. Steps whose scaled share rounds below one megabyte are
// raised to one; if that leaves the final step below one megabyte the plan
// is rejected rather than emitted in an invalid state.
//
// The sequence is computed as float64 weights: only the ratios matter, and
// raw integer values overflow int64 beyond length 92, which would destroy
// the ramp shape for long runs.
func Fibonacci(totalMB, steps int64) (Plan, error) {
	if err := checkBounded(totalMB, steps); err != nil {
		return nil, err
	}
	if steps > maxFibonacciSteps {
		return nil, fmt.Errorf("step count %d exceeds the fibonacci strategy limit of %d", steps, maxFibonacciSteps)
	}

	seq := fibonacci(steps)
	var seqSum float64
	for _, f := range seq {
		seqSum += f
	}

	scale := float64(totalMB) / seqSum
	p := make(Plan, steps)
	var allocated int64
	for i, f := range seq[:steps-1] {
		size := int64(math.Floor(f * scale))
		if size < 1 {
			size = 1
		}
		p[i] = size
		allocated += size
	}

	p[steps-1] = totalMB - allocated
	if p[steps-1] < 1 {
		return nil, fmt.Errorf("cannot build fibonacci plan: %d MB over %d steps leaves the final step below 1 MB", totalMB, steps)
	}
	return p, nil
}

func checkBounded(totalMB, steps int64) error {
	if steps < 1 {
		return fmt.Errorf("step count must be at least 1, got %d", steps)
	}
	if totalMB < 1 {
		return fmt.Errorf("total must be at least 1 MB, got %d", totalMB)
	}
	if totalMB < steps {
		return fmt.Errorf("total %d MB over %d steps: %w", totalMB, steps, ErrTotalTooSmall)
	}
	return nil
}

// fibonacci returns the first n Fibonacci numbers starting 1, 1, 2, 3, 5,
// as float64 weights.
func fibonacci(n int64) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		switch i {
		case 0, 1:
			seq[i] = 1
		default:
			seq[i] = seq[i-1] + seq[i-2]
		}
	}
	return seq
}

// TotalMB returns the sum of all step sizes.
func (p Plan) TotalMB() int64 {
	var sum int64
	for _, size := range p {
		sum += size
	}
	return sum
}
