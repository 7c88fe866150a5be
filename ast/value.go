package ast

// Value is one variant of a declaration value: Identifier, String,
// Number, Percentage, Dimension, URI, Var, Function, Calc, any
// ColorValue, any GradientValue, Angle, Time, Frequency or Resolution.
type Value interface {
	isValue()
}

// Identifier is a bare keyword value, e.g. "solid", "sans-serif"
type Identifier string

// String is a quoted string value, quotes stripped
type String string

// Number is a plain numeric value
type Number float64

// Percentage is a numeric value that carried a "%" suffix
type Percentage float64

// Dimension is a numeric value with a unit, e.g. 1.5rem
type Dimension struct {
	Value float64
	Unit  string
}

// URI is a url(...) value
type URI string

// Var is a custom property reference, e.g. --blue
type Var string

// Function is a function value the parser has no dedicated grammar for
type Function struct {
	Name      string
	Arguments []Value
}

// Calc is a calc() expression as an ordered term list
type Calc struct {
	Terms []CalcTerm
}

func (Identifier) isValue() {}
func (String) isValue()     {}
func (Number) isValue()     {}
func (Percentage) isValue() {}
func (Dimension) isValue()  {}
func (URI) isValue()        {}
func (Var) isValue()        {}
func (Function) isValue()   {}
func (Calc) isValue()       {}

// ColorValue is a Value restricted to colors: Hex, RGB, RGBA, HSL, HSLA
// or NamedColor.
type ColorValue interface {
	Value
	isColor()
}

// Hex is a hexadecimal color, "#" stripped, e.g. "fff"
type Hex string

// RGB is an rgb(r, g, b) color
type RGB struct {
	R, G, B uint8
}

// RGBA is an rgba(r, g, b, a) color; A is a 0..1 fraction
type RGBA struct {
	R, G, B uint8
	A       float32
}

// HSL is an hsl(h, s, l) color
type HSL struct {
	H, S, L float32
}

// HSLA is an hsla(h, s, l, a) color
type HSLA struct {
	H, S, L, A float32
}

// NamedColor is a color keyword, e.g. "red"
type NamedColor string

func (Hex) isValue()        {}
func (RGB) isValue()        {}
func (RGBA) isValue()       {}
func (HSL) isValue()        {}
func (HSLA) isValue()       {}
func (NamedColor) isValue() {}

func (Hex) isColor()        {}
func (RGB) isColor()        {}
func (RGBA) isColor()       {}
func (HSL) isColor()        {}
func (HSLA) isColor()       {}
func (NamedColor) isColor() {}

// GradientValue is a Value restricted to gradient functions
type GradientValue interface {
	Value
	isGradient()
}

// LinearGradient is a linear-gradient(...) value
type LinearGradient struct {
	Direction  *Angle
	ColorStops []ColorStop
}

// RadialGradient is a radial-gradient(...) value
type RadialGradient struct {
	Shape      string
	Size       string
	Position   *Position
	ColorStops []ColorStop
}

// RepeatingLinearGradient is a repeating-linear-gradient(...) value
type RepeatingLinearGradient LinearGradient

// RepeatingRadialGradient is a repeating-radial-gradient(...) value
type RepeatingRadialGradient RadialGradient

func (LinearGradient) isValue()          {}
func (RadialGradient) isValue()          {}
func (RepeatingLinearGradient) isValue() {}
func (RepeatingRadialGradient) isValue() {}

func (LinearGradient) isGradient()          {}
func (RadialGradient) isGradient()          {}
func (RepeatingLinearGradient) isGradient() {}
func (RepeatingRadialGradient) isGradient() {}

// ColorStop is one color stop in a gradient; Position is nil when absent
type ColorStop struct {
	Color    Value
	Position Value
}

// Position is a two-axis position value; either axis may be nil
type Position struct {
	X Value
	Y Value
}

// Angle is a numeric value with an angle unit
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// Time is a numeric value with a time unit
type Time struct {
	Value float64
	Unit  TimeUnit
}

// Frequency is a numeric value with a frequency unit
type Frequency struct {
	Value float64
	Unit  FrequencyUnit
}

// Resolution is a numeric value with a resolution unit
type Resolution struct {
	Value float64
	Unit  ResolutionUnit
}

func (Angle) isValue()      {}
func (Time) isValue()       {}
func (Frequency) isValue()  {}
func (Resolution) isValue() {}

// AngleUnit enumerates angle units
type AngleUnit uint8

const (
	AngleDegree AngleUnit = iota
	AngleGrad
	AngleRadian
	AngleTurn
)

var angleUnitNames = map[AngleUnit]string{
	AngleDegree: "deg",
	AngleGrad:   "grad",
	AngleRadian: "rad",
	AngleTurn:   "turn",
}

func (u AngleUnit) String() string {
	return angleUnitNames[u]
}

// TimeUnit enumerates time units
type TimeUnit uint8

const (
	TimeSecond TimeUnit = iota
	TimeMillisecond
)

var timeUnitNames = map[TimeUnit]string{
	TimeSecond:      "s",
	TimeMillisecond: "ms",
}

func (u TimeUnit) String() string {
	return timeUnitNames[u]
}

// FrequencyUnit enumerates frequency units
type FrequencyUnit uint8

const (
	FrequencyHertz FrequencyUnit = iota
	FrequencyKilohertz
)

var frequencyUnitNames = map[FrequencyUnit]string{
	FrequencyHertz:     "hz",
	FrequencyKilohertz: "khz",
}

func (u FrequencyUnit) String() string {
	return frequencyUnitNames[u]
}

// ResolutionUnit enumerates resolution units
type ResolutionUnit uint8

const (
	ResolutionDPI ResolutionUnit = iota
	ResolutionDPCM
	ResolutionDPPX
)

var resolutionUnitNames = map[ResolutionUnit]string{
	ResolutionDPI:  "dpi",
	ResolutionDPCM: "dpcm",
	ResolutionDPPX: "dppx",
}

func (u ResolutionUnit) String() string {
	return resolutionUnitNames[u]
}

// CalcTerm is one ordered term of a calc() expression: a CalcNumber or a
// CalcOperator.
type CalcTerm interface {
	isCalcTerm()
}

// CalcNumber is a numeric calc term; Unit is empty for unitless numbers
type CalcNumber struct {
	Value float64
	Unit  string
}

// CalcOperator is an arithmetic calc term
type CalcOperator uint8

const (
	CalcAdd CalcOperator = iota
	CalcSubtract
	CalcMultiply
	CalcDivide
)

var calcOperatorNames = map[CalcOperator]string{
	CalcAdd:      "+",
	CalcSubtract: "-",
	CalcMultiply: "*",
	CalcDivide:   "/",
}

func (op CalcOperator) String() string {
	return calcOperatorNames[op]
}

func (CalcNumber) isCalcTerm()   {}
func (CalcOperator) isCalcTerm() {}
