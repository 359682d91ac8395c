// Package linalg is a small dense-matrix toolkit: row-major float64
// matrices with checked arithmetic, exponentiation by squaring and an
// aligned text rendering.
//
// 🚀 What is linalg?
//
//	A compact library plus a demo CLI that bring together:
//		• Construction: zeros, filled, from literal rows, identity
//		• Arithmetic: add, subtract, multiply, compound multiply, scale, transpose
//		• Powers: integer exponents in O(log e) matrix products
//		• Rendering: right-aligned columns followed by a "Shape: RxC" line
//		• Interop: lossless conversion to and from gonum's mat.Dense
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/            Matrix interface, Dense storage, operations and rendering
//	convert/           gonum interop
//	internal/config/   TOML/YAML sample configuration for the CLI
//	cmd/linalg/        the cobra-based demo command
//
// Quick start:
//
//	a, _ := matrix.NewFromRows(2, 2, [][]float64{{1, 2}, {3, 4}})
//	p, _ := matrix.Pow(a, 3)
//	fmt.Println(p)
//	//  37  54
//	//  81 118
//	// Shape: 2x2
package linalg
