// internal/app/system/csvutil/limits.go
package csvutil

// Size and row limits for spreadsheet exports.
const (
	MaxInputSize = 5 << 20 // 5 MB
	MaxRows      = 20000
)
