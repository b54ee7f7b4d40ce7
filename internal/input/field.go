package input

import (
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("not a number")

// Field is a single bounded numeric input. Values never leave [min, max]:
// every mutation clamps instead of failing.
type Field interface {
	Label() string
	Hint() string
	Bounds() string
	Text() string
	Parse(text string) error
	Increment()
	Decrement()
	Reset()
}

type FloatField struct {
	label     string
	hint      string
	min       float64
	max       float64
	def       float64
	step      float64
	precision int

	value float64
}

var _ Field = (*FloatField)(nil)

func NewFloatField(label, hint string, min, max, def, step float64, precision int) *FloatField {
	f := &FloatField{
		label:     label,
		hint:      hint,
		min:       min,
		max:       max,
		def:       def,
		step:      step,
		precision: precision,
	}
	f.Reset()

	return f
}

func (f *FloatField) Label() string { return f.label }

func (f *FloatField) Hint() string { return f.hint }

func (f *FloatField) Value() float64 { return f.value }

func (f *FloatField) Bounds() string {
	return "[" + f.format(f.min) + ", " + f.format(f.max) + "]"
}

func (f *FloatField) Text() string {
	return f.format(f.value)
}

func (f *FloatField) Set(v float64) {
	if math.IsNaN(v) {
		return
	}

	scale := math.Pow(10, float64(f.precision))
	v = math.Round(v*scale) / scale

	f.value = math.Max(f.min, math.Min(f.max, v))
}

func (f *FloatField) Parse(text string) error {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) {
		return errors.Wrapf(ErrNotANumber, "%s: %q", f.label, text)
	}

	f.Set(v)

	return nil
}

func (f *FloatField) Increment() { f.Set(f.value + f.step) }

func (f *FloatField) Decrement() { f.Set(f.value - f.step) }

func (f *FloatField) Reset() { f.Set(f.def) }

func (f *FloatField) format(v float64) string {
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

type IntField struct {
	label string
	hint  string
	min   int
	max   int
	def   int
	step  int

	value int
}

var _ Field = (*IntField)(nil)

func NewIntField(label, hint string, min, max, def, step int) *IntField {
	f := &IntField{
		label: label,
		hint:  hint,
		min:   min,
		max:   max,
		def:   def,
		step:  step,
	}
	f.Reset()

	return f
}

func (f *IntField) Label() string { return f.label }

func (f *IntField) Hint() string { return f.hint }

func (f *IntField) Value() int { return f.value }

func (f *IntField) Bounds() string {
	return "[" + strconv.Itoa(f.min) + ", " + strconv.Itoa(f.max) + "]"
}

func (f *IntField) Text() string {
	return strconv.Itoa(f.value)
}

func (f *IntField) Set(v int) {
	switch {
	case v < f.min:
		f.value = f.min
	case v > f.max:
		f.value = f.max
	default:
		f.value = v
	}
}

// Parse accepts whole numbers only; a fractional age is rejected rather than truncated.
func (f *IntField) Parse(text string) error {
	text = strings.TrimSpace(text)

	v, err := strconv.Atoi(text)
	if err != nil {
		return errors.Wrapf(ErrNotANumber, "%s: %q", f.label, text)
	}

	f.Set(v)

	return nil
}

func (f *IntField) Increment() { f.Set(f.value + f.step) }

func (f *IntField) Decrement() { f.Set(f.value - f.step) }

func (f *IntField) Reset() { f.Set(f.def) }
