//go:build !cgo

package hostwin

import (
	"errors"

	"robotscene/hal"
)

func Run(_ *hal.Host, _ func(hal.HAL) (hal.App, error), _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
