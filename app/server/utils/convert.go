package utils

// P 取值的指针，用于可选字段
func P[T any](v T) *T {
	return &v
}
