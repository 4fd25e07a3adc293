// Package utils provides small scalar conversion helpers.
//
// Values arriving through JSON bodies are loosely typed (float64, string,
// bool), while the properties file only ever stores text. ToFloat and
// FormatScalar bridge the two worlds without reflection.
package utils
