//go:build js && wasm

// Command wasm exposes the matrix engine to JavaScript as the global
// object AlgoMatrix. Matrices are addressed by integer handles; failures
// come back as {error: kind, message: text} objects, where kind is one of
// InvalidDimension, IndexOutOfRange, ShapeMismatch, DimensionMismatch,
// UnknownHandle, NetworkError, or Error for anything else, including
// arguments of the wrong type.
package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-matrix/internal/kernel"
	"github.com/cwbudde/algo-matrix/internal/webdemo"
)

var (
	engine = webdemo.NewEngine()
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("create", export(2, func(args []js.Value) any {
		h, err := engine.NewMatrix(args[0].Int(), args[1].Int())
		return handleResult(h, err)
	}))

	api.Set("fromArray", export(1, func(args []js.Value) any {
		rows := args[0]
		values := make([][]float32, rows.Length())
		for i := range values {
			row := rows.Index(i)
			values[i] = make([]float32, row.Length())
			for j := range values[i] {
				values[i][j] = float32(row.Index(j).Float())
			}
		}
		h, err := engine.FromValues(values)
		return handleResult(h, err)
	}))

	api.Set("release", export(1, func(args []js.Value) any {
		return errorResult(engine.Release(webdemo.Handle(args[0].Int())))
	}))

	api.Set("at", export(3, func(args []js.Value) any {
		v, err := engine.At(webdemo.Handle(args[0].Int()), args[1].Int(), args[2].Int())
		if err != nil {
			return errorObject(err)
		}
		return float64(v)
	}))

	api.Set("set", export(4, func(args []js.Value) any {
		err := engine.Set(webdemo.Handle(args[0].Int()), args[1].Int(), args[2].Int(), float32(args[3].Float()))
		return errorResult(err)
	}))

	api.Set("fill", export(2, func(args []js.Value) any {
		return errorResult(engine.Fill(webdemo.Handle(args[0].Int()), float32(args[1].Float())))
	}))

	api.Set("rows", export(1, func(args []js.Value) any {
		rows, _, err := engine.Dims(webdemo.Handle(args[0].Int()))
		if err != nil {
			return errorObject(err)
		}
		return rows
	}))

	api.Set("cols", export(1, func(args []js.Value) any {
		_, cols, err := engine.Dims(webdemo.Handle(args[0].Int()))
		if err != nil {
			return errorObject(err)
		}
		return cols
	}))

	api.Set("toArray", export(1, func(args []js.Value) any {
		values, err := engine.Values(webdemo.Handle(args[0].Int()))
		if err != nil {
			return errorObject(err)
		}
		out := js.Global().Get("Array").New(len(values))
		for i, row := range values {
			arr := js.Global().Get("Float32Array").New(len(row))
			for j, v := range row {
				arr.SetIndex(j, v)
			}
			out.SetIndex(i, arr)
		}
		return out
	}))

	api.Set("add", binary(engine.Add))
	api.Set("subtract", binary(engine.Subtract))
	api.Set("multiply", binary(engine.Multiply))
	api.Set("addInPlace", inPlace(engine.AddInPlace))
	api.Set("subtractInPlace", inPlace(engine.SubtractInPlace))

	api.Set("buildNetwork", export(3, func(args []js.Value) any {
		arr := args[0]
		sizes := make([]int, arr.Length())
		for i := range sizes {
			sizes[i] = arr.Index(i).Int()
		}
		return errorResult(engine.BuildNetwork(sizes, args[1].String(), int64(args[2].Int())))
	}))

	api.Set("forward", export(1, func(args []js.Value) any {
		h, err := engine.Forward(webdemo.Handle(args[0].Int()))
		return handleResult(h, err)
	}))

	api.Set("layers", export(0, func([]js.Value) any {
		layers := engine.Layers()
		out := js.Global().Get("Array").New(len(layers))
		for i, l := range layers {
			obj := js.Global().Get("Object").New()
			obj.Set("inputs", l.Inputs)
			obj.Set("outputs", l.Outputs)
			obj.Set("activation", l.Activation)
			out.SetIndex(i, obj)
		}
		return out
	}))

	api.Set("backend", export(0, func([]js.Value) any {
		info := js.Global().Get("Object").New()
		info.Set("name", kernel.Implementation())
		info.Set("lanes", kernel.Lanes())
		return info
	}))

	js.Global().Set("AlgoMatrix", api)
	select {}
}

func binary(op func(a, b webdemo.Handle) (webdemo.Handle, error)) js.Func {
	return export(2, func(args []js.Value) any {
		h, err := op(webdemo.Handle(args[0].Int()), webdemo.Handle(args[1].Int()))
		return handleResult(h, err)
	})
}

func inPlace(op func(a, b webdemo.Handle) error) js.Func {
	return export(2, func(args []js.Value) any {
		return errorResult(op(webdemo.Handle(args[0].Int()), webdemo.Handle(args[1].Int())))
	})
}

func handleResult(h webdemo.Handle, err error) any {
	if err != nil {
		return errorObject(err)
	}
	return int(h)
}

func errorResult(err error) any {
	if err != nil {
		return errorObject(err)
	}
	return js.Null()
}

func errorObject(err error) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("error", webdemo.ErrorKind(err))
	obj.Set("message", err.Error())
	return obj
}

// export wraps fn as a JS function that rejects calls with fewer than
// arity arguments. A panic inside fn, such as a string passed where a
// number is expected, is returned as an error object.
func export(arity int, fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < arity {
			obj := js.Global().Get("Object").New()
			obj.Set("error", "Error")
			obj.Set("message", "not enough arguments")
			return obj
		}
		result, err := webdemo.Guard(func() any { return fn(args) })
		if err != nil {
			return errorObject(err)
		}
		return result
	})
	funcs = append(funcs, f)
	return f
}
