//go:build !darwin

package hotkey

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// Listen always fails with ErrUnsupported outside macOS.
func Listen(ctx context.Context, acc Accelerator, logger hclog.Logger, fn Handler) error {
	return ErrUnsupported
}
