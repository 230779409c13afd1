// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice adds the generic Map and Filter helpers the standard [slices]
package leaves out.
*/
package slice

// Map applies transform to every element of input. A nil input yields nil.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter keeps the elements of input that satisfy keep, preserving order.
// The result is never nil so an empty match encodes as a JSON array.
func Filter[T any](input []T, keep func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range input {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
