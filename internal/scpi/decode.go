// internal/scpi/decode.go
package scpi

// Decode resolves one drained error-queue entry.
//
// Code 0 is the empty-queue sentinel and never fails. Any other code
// fails with a *DeviceError carrying the reported code: the catalog
// entry's stored code is not used, because the same message can recur
// under a different code across firmware revisions. Suppressing an
// error is a caller policy decision, never this function's.
func Decode(code int, message string) error {
	if code == 0 {
		return nil
	}

	if e, ok := Lookup(message); ok {
		return &DeviceError{Report: Report{
			Code:    code,
			Summary: e.Summary,
			Detail:  e.Detail,
		}}
	}

	// Uncataloged firmware message. Keep the raw text so the operator
	// can still match it against a newer manual.
	return &DeviceError{Report: Report{
		Code:    code,
		Summary: message,
	}}
}
