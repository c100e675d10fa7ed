// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package niservice

// Reverse returns s with its Unicode code points in reverse order.
// Reversing the result again yields s for any valid UTF-8 string.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseParam is the common implementation of Service.Reverse.  It
// fails with ErrMissingParameter if data is nil.
func ReverseParam(data *string) (string, error) {
	if data == nil {
		return "", ErrMissingParameter{Name: ReverseParamName}
	}
	return Reverse(*data), nil
}

// ReverseParamName is the name of the query parameter carrying the
// string to reverse.
const ReverseParamName = "data"
