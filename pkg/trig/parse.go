package trig

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/expr-lang/expr"
)

var (
	// ErrEmptyExpression is returned for blank editor input.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrNotANumber is returned when an expression evaluates to NaN or ±Inf.
	ErrNotANumber = errors.New("expression is not a finite number")
)

var constants = map[string]float64{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"e":   math.E,
}

var functions = map[string]func(float64) float64{
	"sqrt": math.Sqrt,
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
}

// ParseAngle evaluates a free-form expression such as "pi/4", "2π/3" or
// "450" and returns the angle in degrees normalised into [0, 360). In Radians
// mode the expression value is taken as radians.
func ParseAngle(text string, u Unit) (float64, error) {
	v, err := Evaluate(text)
	if err != nil {
		return 0, err
	}
	if u == Radians {
		v = RadToDeg(v)
	}
	return Normalize(v), nil
}

// Evaluate computes the numeric value of a math expression.
func Evaluate(text string) (float64, error) {
	code := normalizeExpression(text)
	if code == "" {
		return 0, ErrEmptyExpression
	}

	env := make(map[string]any, len(constants))
	for name, v := range constants {
		env[name] = v
	}

	opts := []expr.Option{expr.Env(env)}
	for name, fn := range functions {
		opts = append(opts, expr.Function(name, wrapFunc(name, fn)))
	}

	program, err := expr.Compile(code, opts...)
	if err != nil {
		return 0, fmt.Errorf("compile %q: %w", text, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", text, err)
	}

	v, ok := toFloat(out)
	if !ok {
		return 0, fmt.Errorf("evaluate %q: result %v is not a number", text, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}
	return v, nil
}

func wrapFunc(name string, fn func(float64) float64) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d", name, len(params))
		}
		x, ok := toFloat(params[0])
		if !ok {
			return nil, fmt.Errorf("%s: argument %v is not a number", name, params[0])
		}
		return fn(x), nil
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

type tokenKind int

const (
	tokNone tokenKind = iota
	tokNumber
	tokConst
	tokIdent
	tokOpen
	tokClose
	tokOperator
)

var replacer = strings.NewReplacer(
	"π", "pi",
	"τ", "tau",
	"×", "*",
	"·", "*",
	"÷", "/",
	"−", "-",
)

// normalizeExpression rewrites math notation into expr syntax: unicode
// symbols become names and implicit products ("2pi", "3(pi)") get an
// explicit '*'.
func normalizeExpression(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "°"))
	s = replacer.Replace(s)

	rs := []rune(s)
	var b strings.Builder
	prev := tokNone

	product := func() {
		if prev == tokNumber || prev == tokConst || prev == tokClose {
			b.WriteByte('*')
		}
	}

	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			i = scanNumber(rs, i)
			if prev == tokConst || prev == tokClose {
				b.WriteByte('*')
			}
			b.WriteString(string(rs[start:i]))
			prev = tokNumber

		case unicode.IsLetter(r) || r == '_':
			start := i
			i = scanIdent(rs, i)
			name := strings.ToLower(string(rs[start:i]))
			product()
			b.WriteString(name)
			if _, ok := constants[name]; ok {
				prev = tokConst
			} else {
				prev = tokIdent
			}

		case r == '√':
			i = skipSpace(rs, i+1)
			product()
			switch {
			case i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.'):
				start := i
				i = scanNumber(rs, i)
				b.WriteString("sqrt(" + string(rs[start:i]) + ")")
				prev = tokClose
			case i < len(rs) && unicode.IsLetter(rs[i]):
				start := i
				i = scanIdent(rs, i)
				b.WriteString("sqrt(" + strings.ToLower(string(rs[start:i])) + ")")
				prev = tokClose
			default:
				b.WriteString("sqrt")
				prev = tokIdent
			}

		case r == '(':
			product()
			b.WriteRune(r)
			prev = tokOpen
			i++

		case r == ')':
			b.WriteRune(r)
			prev = tokClose
			i++

		default:
			b.WriteRune(r)
			prev = tokOperator
			i++
		}
	}
	return strings.TrimSpace(b.String())
}

// scanNumber returns the index after the number literal starting at i,
// including an exponent such as "1e-3".
func scanNumber(rs []rune, i int) int {
	for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.') {
		i++
	}
	if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
		j := i + 1
		if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
			j++
		}
		if j < len(rs) && unicode.IsDigit(rs[j]) {
			for j < len(rs) && unicode.IsDigit(rs[j]) {
				j++
			}
			return j
		}
	}
	return i
}

func scanIdent(rs []rune, i int) int {
	for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
		i++
	}
	return i
}

func skipSpace(rs []rune, i int) int {
	for i < len(rs) && unicode.IsSpace(rs[i]) {
		i++
	}
	return i
}
