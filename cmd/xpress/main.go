// Package main provides the xpress CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/born-ml/xpress/autodiff"
	"github.com/born-ml/xpress/expr"
	"github.com/born-ml/xpress/tensor"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	workers := flag.Int("workers", 0, "Goroutines used to build large tensors (0 = number of CPUs, 1 = sequential)")
	minChunk := flag.Int("min-chunk", 0, "Minimum elements per goroutine (0 = default)")
	at := flag.Float64("at", 1, "Value of x at which demo derivatives are evaluated")
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	configure(*workers, *minChunk)

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("xpress %s\n", version)
	case "", "demo":
		if err := runDemo(*at); err != nil {
			klog.Exitf("demo failed: %v", err)
		}
	case "tensor":
		if err := runTensorDemo(); err != nil {
			klog.Exitf("tensor demo failed: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "xpress %s - symbolic differentiation over scalars and tensors\n\n", version)
	fmt.Fprintln(os.Stderr, "Usage: xpress [flags] [command]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  demo       Differentiate and evaluate sample expressions (default)")
	fmt.Fprintln(os.Stderr, "  tensor     Evaluate sample tensor expressions")
	fmt.Fprintln(os.Stderr, "  version    Show version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

// configure applies the parallel construction flags.
func configure(workers, minChunk int) {
	if workers == 1 {
		tensor.Configure(tensor.Sequential())
		return
	}
	cfg := tensor.DefaultConfig()
	if workers > 1 {
		cfg.NumWorkers = workers
		cfg.Enabled = true
	}
	if minChunk > 0 {
		cfg.MinChunkSize = minChunk
	}
	tensor.Configure(cfg)
}

func runDemo(at float64) error {
	x := expr.Var("x")
	names := expr.Names{x: "x"}

	demos := []expr.Expr{
		expr.Pow(x, expr.Const(2)),
		expr.Mul(expr.Sin(x), x),
		expr.Div(expr.Exp(x), expr.Add(x, expr.Const(1))),
		expr.Pow(x, x),
		expr.Log(expr.Add(expr.Pow(x, expr.Const(2)), expr.Const(1))),
	}

	for _, f := range demos {
		df := autodiff.Derivative(f, x)

		fText, err := expr.Render(f, names)
		if err != nil {
			return err
		}
		dfText, err := expr.Render(df, names)
		if err != nil {
			return err
		}
		v, err := expr.Evaluate(df, expr.Values{x: at})
		if err != nil {
			return err
		}

		fmt.Printf("f(x)  = %s\n", fText)
		fmt.Printf("f'(x) = %s\n", dfText)
		fmt.Printf("f'(%g) = %s\n\n", at, v)
	}
	return nil
}

func runTensorDemo() error {
	a := expr.TensorVar("a", tensor.Shape{2, 2})
	b := expr.TensorVar("b", tensor.Shape{2, 2})
	names := expr.Names{a: "a", b: "b"}

	values := expr.Values{
		a: [][]float64{{1, 2}, {3, 4}},
		b: [2][2]float64{{1, 0}, {0, 1}},
	}

	demos := []expr.Expr{
		expr.Add(a, b),
		expr.Mul(a, b),
		expr.Hadamard(a, b),
		expr.Mul(expr.Const(2), a),
		expr.Pow(a, expr.Const(2)),
	}

	for _, e := range demos {
		text, err := expr.Render(e, names)
		if err != nil {
			return err
		}
		v, err := expr.Evaluate(e, values)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", text, v)
	}

	_, err := expr.Try(func() expr.Expr {
		return expr.Add(a, expr.TensorVar("c", tensor.Shape{3}))
	})
	fmt.Printf("a + c: %v\n", err)
	return nil
}
