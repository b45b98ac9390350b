package provider

import (
	"context"
	"errors"
	"fmt"

	"shopagent/model"
)

// classify maps a raw backend failure onto the agent's error taxonomy.
// Deadline expiry becomes ErrModelTimeout; everything else (network, auth,
// service errors) becomes ErrModelUnavailable. The original cause stays in
// the chain for logging.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", model.ErrModelTimeout, err)
	}
	return fmt.Errorf("%w: %w", model.ErrModelUnavailable, err)
}
