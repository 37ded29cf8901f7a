package internal

import (
	"fmt"
	"math"
	"strings"
)

// formats the text in a javascript like syntax.
func format(text string, params map[string]string) string {
	for key, val := range params {
		text = strings.Replace(text, fmt.Sprintf("${%v}", key), val, -1)
	}
	return text
}

// MapFunc returns a slice of all elements in the given slice mapped by the given function.
func MapFunc[Ts ~[]T, Ss ~[]S, T, S any](function func(T) S, slice Ts) Ss {
	mappedSlice := make(Ss, len(slice))
	for i, v := range slice {
		mappedSlice[i] = function(v)
	}
	return mappedSlice
}

// FilterFunc takes a predicate function and returns all the elements of the slice which return true for the function.
func FilterFunc[T any, Ts ~[]T](function func(T) bool, slice Ts) Ts {
	var filtered Ts
	for _, v := range slice {
		if function(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func roundFloat(num float64, digits int) float64 {
	tenMultiplier := math.Pow10(digits)
	return math.Round(num*tenMultiplier) / tenMultiplier
}
