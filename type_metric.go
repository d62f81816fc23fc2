package econ

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Metric is a financial figure that may be undefined.
//
// Undefined is a data condition (a division by zero, no rate of return), it is
// never reported as 0. The zero value is undefined.
type Metric struct {
	value   float64
	defined bool
}

// Undefined is the undefined Metric.
var Undefined = Metric{}

// Defined returns a defined metric for v. NaN and infinite values are not
// meaningful figures and yield Undefined.
func Defined(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return Metric{value: v, defined: true}
}

// IsDefined reports whether m holds a value.
func (m Metric) IsDefined() bool { return m.defined }

// Get returns the value and whether it is defined.
func (m Metric) Get() (float64, bool) { return m.value, m.defined }

// Float returns the value, or NaN if m is undefined.
func (m Metric) Float() float64 {
	if !m.defined {
		return math.NaN()
	}
	return m.value
}

// Equal reports whether both metrics are undefined or hold values within tol.
func (m Metric) Equal(n Metric, tol float64) bool {
	if m.defined != n.defined {
		return false
	}
	return !m.defined || math.Abs(m.value-n.value) <= tol
}

func (m Metric) String() string {
	if !m.defined {
		return "undefined"
	}
	return strconv.FormatFloat(m.value, 'g', -1, 64)
}

// MarshalJSON encodes an undefined metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Undefined
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}
