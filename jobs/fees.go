package jobs

import (
	"context"
	"fmt"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

// OverdueFeeSweep flips Pending fees past due to Overdue, notifying the
// affected students. Safe to re-run; already-flipped fees are skipped.
func OverdueFeeSweep(svc *school.Service, logger core.Logger) Job {
	return func(ctx context.Context) error {
		flipped, err := svc.MarkOverdueFees(ctx)
		if err != nil {
			logger.Error(fmt.Sprintf("overdue fee sweep: %v", err), err)
			return err
		}
		if flipped > 0 {
			logger.Info(fmt.Sprintf("overdue fee sweep: %d fee(s) marked overdue", flipped))
		}
		return nil
	}
}
