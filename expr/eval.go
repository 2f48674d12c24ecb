// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expr

import "github.com/pkg/errors"

// scope is a chain of let bindings, innermost first.
type scope struct {
	name  string
	value int64
	next  *scope
}

func (s *scope) lookup(name string) (int64, bool) {
	for e := s; e != nil; e = e.next {
		if e.name == name {
			return e.value, true
		}
	}
	return 0, false
}

// Eval evaluates e with no names in scope. Arithmetic is int64 with Go's
// wraparound; division truncates toward zero.
func Eval(e Expr) (int64, error) {
	return eval(e, nil)
}

func eval(e Expr, env *scope) (int64, error) {
	switch n := e.(type) {
	case *IntLit:
		return n.Value, nil
	case *Ref:
		v, ok := env.lookup(n.Name)
		if !ok {
			return 0, errors.Errorf("%s: undefined name %q", n.At, n.Name)
		}
		return v, nil
	case *Unary:
		v, err := eval(n.Operand, env)
		if err != nil {
			return 0, err
		}
		if n.Op != Minus {
			return 0, errors.Errorf("%s: unsupported unary operator %s", n.At, n.Op)
		}
		return -v, nil
	case *Binary:
		l, err := eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case Plus:
			return l + r, nil
		case Minus:
			return l - r, nil
		case Star:
			return l * r, nil
		case Slash:
			if r == 0 {
				return 0, errors.Errorf("%s: division by zero", n.At)
			}
			return l / r, nil
		}
		return 0, errors.Errorf("%s: unsupported operator %s", n.At, n.Op)
	case *Let:
		v, err := eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		return eval(n.Body, &scope{name: n.Name, value: v, next: env})
	case *Call:
		args := make([]int64, len(n.Args))
		for i, a := range n.Args {
			v, err := eval(a, env)
			if err != nil {
				return 0, errors.Wrapf(err, "argument %d of %s", i+1, n.Fn)
			}
			args[i] = v
		}
		return callBuiltin(n, args)
	}
	return 0, errors.Errorf("unknown expression node %T", e)
}

func callBuiltin(c *Call, args []int64) (int64, error) {
	switch c.Fn {
	case "abs":
		if len(args) != 1 {
			return 0, errors.Errorf("%s: abs takes 1 argument, got %d", c.At, len(args))
		}
		if args[0] < 0 {
			return -args[0], nil
		}
		return args[0], nil
	case "min":
		if len(args) == 0 {
			return 0, errors.Errorf("%s: min needs at least 1 argument", c.At)
		}
		out := args[0]
		for _, v := range args[1:] {
			if v < out {
				out = v
			}
		}
		return out, nil
	case "max":
		if len(args) == 0 {
			return 0, errors.Errorf("%s: max needs at least 1 argument", c.At)
		}
		out := args[0]
		for _, v := range args[1:] {
			if v > out {
				out = v
			}
		}
		return out, nil
	}
	return 0, errors.Errorf("%s: unknown function %q", c.At, c.Fn)
}
