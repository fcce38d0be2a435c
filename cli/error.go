package cli

import (
	"fmt"

	"github.com/docker/docker/errdefs"
)

// StatusError reports an unsuccessful exit by a command.
type StatusError struct {
	Status     string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("Status: %s, Code: %d", e.Status, e.StatusCode)
}

// 退出码: 125 参数或文档错误, 126 策略拒绝, 其他错误为 1
const (
	ExitInvalid   = 125
	ExitForbidden = 126
	ExitFailure   = 1
)

// StatusCode maps an error class to the process exit code.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errdefs.IsInvalidParameter(err):
		return ExitInvalid
	case errdefs.IsForbidden(err):
		return ExitForbidden
	default:
		return ExitFailure
	}
}

// ToStatusError converts err into a StatusError carrying its exit code.
// StatusErrors are returned unchanged.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if sterr, ok := err.(StatusError); ok {
		return sterr
	}
	return StatusError{Status: err.Error(), StatusCode: StatusCode(err)}
}
