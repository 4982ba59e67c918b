// Package formula evaluates designer-authored numeric expressions in a sandbox.
//
// Expressions use Go expression syntax restricted to arithmetic, comparisons,
// boolean operators and a fixed set of math functions. The only free names are the
// battler bindings `a` (the user or source) and `b` (the subject), the variable table
// `v[n]`, and the `Math` namespace:
//
//	b.mhp * 0.05
//	-Math.floor(a.mat / 4) + v[3]
//	max(10, b.hp - a.atk * 2)
//
// Anything else fails at compile time, so a broken formula is reported instead of
// executing arbitrary code or silently producing garbage.
package formula

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"strconv"
	"sync"

	"github.com/KirkDiggler/rpg-realtime/internal/errors"
)

// Scope resolves battler attributes such as hp or mhp
type Scope interface {
	Lookup(name string) (float64, bool)
}

// Values is a map-backed Scope
type Values map[string]float64

// Lookup returns the named value
func (v Values) Lookup(name string) (float64, bool) {
	f, ok := v[name]
	return f, ok
}

// Env binds the free names of an expression
type Env struct {
	A    Scope
	B    Scope
	Vars map[int]float64
}

// Expr is a compiled, validated expression
type Expr struct {
	src  string
	root ast.Expr
}

// Source returns the original expression text
func (e *Expr) Source() string {
	return e.src
}

var functions = map[string]func(args []float64) (float64, bool){
	"min":   variadic(math.Min),
	"max":   variadic(math.Max),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"round": unary(math.Round),
	"abs":   unary(math.Abs),
	"sqrt":  unary(math.Sqrt),
	"pow": func(args []float64) (float64, bool) {
		if len(args) != 2 {
			return 0, false
		}
		return math.Pow(args[0], args[1]), true
	},
}

var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// Compile parses and validates an expression
func Compile(src string) (*Expr, error) {
	root, err := parser.ParseExpr(src)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed formula").
			WithMeta("formula", src)
	}

	if err := validate(root); err != nil {
		return nil, errors.Wrap(err, "unsupported formula").WithMeta("formula", src)
	}

	return &Expr{src: src, root: root}, nil
}

// Eval evaluates the expression. A result that is NaN or infinite is an error.
func (e *Expr) Eval(env *Env) (float64, error) {
	if env == nil {
		env = &Env{}
	}

	value, err := eval(e.root, env)
	if err != nil {
		return 0, errors.Wrap(err, "formula evaluation failed").WithMeta("formula", e.src)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.InvalidArgumentf("formula produced a non-finite value: %v", value).
			WithMeta("formula", e.src)
	}

	return value, nil
}

// Evaluator compiles formulas on first use and caches them by source text
type Evaluator struct {
	mu    sync.Mutex
	cache map[string]*Expr
}

// NewEvaluator creates an evaluator with an empty cache
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[string]*Expr)}
}

// Evaluate compiles (or reuses) and evaluates src
func (ev *Evaluator) Evaluate(src string, env *Env) (float64, error) {
	ev.mu.Lock()
	expr, ok := ev.cache[src]
	ev.mu.Unlock()

	if !ok {
		compiled, err := Compile(src)
		if err != nil {
			return 0, err
		}
		ev.mu.Lock()
		ev.cache[src] = compiled
		ev.mu.Unlock()
		expr = compiled
	}

	return expr.Eval(env)
}

func validate(node ast.Expr) error {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return errors.InvalidArgumentf("literal %s is not a number", n.Value)
		}
		return nil
	case *ast.ParenExpr:
		return validate(n.X)
	case *ast.UnaryExpr:
		switch n.Op {
		case token.ADD, token.SUB, token.NOT:
			return validate(n.X)
		}
		return errors.InvalidArgumentf("operator %s is not allowed", n.Op)
	case *ast.BinaryExpr:
		if !allowedBinary(n.Op) {
			return errors.InvalidArgumentf("operator %s is not allowed", n.Op)
		}
		if err := validate(n.X); err != nil {
			return err
		}
		return validate(n.Y)
	case *ast.SelectorExpr:
		return validateSelector(n)
	case *ast.IndexExpr:
		ident, ok := n.X.(*ast.Ident)
		if !ok || ident.Name != "v" {
			return errors.InvalidArgument("only the variable table v[n] can be indexed")
		}
		return validate(n.Index)
	case *ast.CallExpr:
		name, ok := callName(n.Fun)
		if !ok {
			return errors.InvalidArgument("only math functions can be called")
		}
		if _, ok := functions[name]; !ok {
			return errors.InvalidArgumentf("unknown function %s", name)
		}
		for _, arg := range n.Args {
			if err := validate(arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.Ident:
		return errors.InvalidArgumentf("unknown name %s", n.Name)
	default:
		return errors.InvalidArgumentf("unsupported expression %T", node)
	}
}

func validateSelector(n *ast.SelectorExpr) error {
	ident, ok := n.X.(*ast.Ident)
	if !ok {
		return errors.InvalidArgument("nested selectors are not allowed")
	}
	switch ident.Name {
	case "a", "b":
		return nil
	case "Math":
		if _, ok := constants[n.Sel.Name]; ok {
			return nil
		}
		return errors.InvalidArgumentf("unknown constant Math.%s", n.Sel.Name)
	}
	return errors.InvalidArgumentf("unknown name %s", ident.Name)
}

func allowedBinary(op token.Token) bool {
	switch op {
	case token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
		token.LSS, token.GTR, token.LEQ, token.GEQ, token.EQL, token.NEQ,
		token.LAND, token.LOR:
		return true
	}
	return false
}

func callName(fun ast.Expr) (string, bool) {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name, true
	case *ast.SelectorExpr:
		if x, ok := f.X.(*ast.Ident); ok && x.Name == "Math" {
			return f.Sel.Name, true
		}
	}
	return "", false
}

func eval(node ast.Expr, env *Env) (float64, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		return strconv.ParseFloat(n.Value, 64)
	case *ast.ParenExpr:
		return eval(n.X, env)
	case *ast.UnaryExpr:
		x, err := eval(n.X, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.SUB:
			return -x, nil
		case token.NOT:
			return boolean(x == 0), nil
		}
		return x, nil
	case *ast.BinaryExpr:
		return evalBinary(n, env)
	case *ast.SelectorExpr:
		return evalSelector(n, env)
	case *ast.IndexExpr:
		idx, err := eval(n.Index, env)
		if err != nil {
			return 0, err
		}
		// unset variables read as zero
		return env.Vars[int(idx)], nil
	case *ast.CallExpr:
		name, _ := callName(n.Fun)
		args := make([]float64, len(n.Args))
		for i, arg := range n.Args {
			v, err := eval(arg, env)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		result, ok := functions[name](args)
		if !ok {
			return 0, errors.InvalidArgumentf("wrong number of arguments for %s", name)
		}
		return result, nil
	}
	return 0, errors.InvalidArgumentf("unsupported expression %T", node)
}

func evalBinary(n *ast.BinaryExpr, env *Env) (float64, error) {
	x, err := eval(n.X, env)
	if err != nil {
		return 0, err
	}

	// short circuit before touching the right hand side
	switch n.Op {
	case token.LAND:
		if x == 0 {
			return 0, nil
		}
	case token.LOR:
		if x != 0 {
			return 1, nil
		}
	}

	y, err := eval(n.Y, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case token.ADD:
		return x + y, nil
	case token.SUB:
		return x - y, nil
	case token.MUL:
		return x * y, nil
	case token.QUO:
		return x / y, nil
	case token.REM:
		return math.Mod(x, y), nil
	case token.LSS:
		return boolean(x < y), nil
	case token.GTR:
		return boolean(x > y), nil
	case token.LEQ:
		return boolean(x <= y), nil
	case token.GEQ:
		return boolean(x >= y), nil
	case token.EQL:
		return boolean(x == y), nil
	case token.NEQ:
		return boolean(x != y), nil
	case token.LAND, token.LOR:
		return boolean(y != 0), nil
	}
	return 0, errors.InvalidArgumentf("operator %s is not allowed", n.Op)
}

func evalSelector(n *ast.SelectorExpr, env *Env) (float64, error) {
	ident := n.X.(*ast.Ident)
	var scope Scope
	switch ident.Name {
	case "Math":
		return constants[n.Sel.Name], nil
	case "a":
		scope = env.A
	case "b":
		scope = env.B
	}
	if scope == nil {
		return 0, errors.InvalidArgumentf("binding %s is not available", ident.Name)
	}

	value, ok := scope.Lookup(n.Sel.Name)
	if !ok {
		return 0, errors.InvalidArgumentf("unknown attribute %s.%s", ident.Name, n.Sel.Name)
	}
	return value, nil
}

func boolean(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func unary(fn func(float64) float64) func([]float64) (float64, bool) {
	return func(args []float64) (float64, bool) {
		if len(args) != 1 {
			return 0, false
		}
		return fn(args[0]), true
	}
}

func variadic(fn func(float64, float64) float64) func([]float64) (float64, bool) {
	return func(args []float64) (float64, bool) {
		if len(args) == 0 {
			return 0, false
		}
		result := args[0]
		for _, a := range args[1:] {
			result = fn(result, a)
		}
		return result, true
	}
}
