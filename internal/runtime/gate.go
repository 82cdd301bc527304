package runtime

import (
	"context"
	"log/slog"

	"github.com/cjohansen/use-case/pkg/outcome"
	"github.com/cjohansen/use-case/pkg/ports"
)

// VerifyPreconditions evaluates preconditions strictly in declaration order
// against the (adapted) input. It returns nil when every check passes.
//
// The first unmet condition halts evaluation and yields a PreConditionFailed
// outcome whose cause is the precondition instance. A check that returns an
// error halts evaluation the same way, with the error as the cause; callers
// tell the two apart by inspecting the cause's type. Later preconditions are
// never evaluated.
func VerifyPreconditions(ctx context.Context, logger *slog.Logger, preconditions []ports.Precondition, input any) *outcome.Outcome {
	for i, p := range preconditions {
		ok, err := p.Satisfied(ctx, input)
		if err != nil {
			logger.Debug("precondition check crashed", "index", i, "error", err)
			return outcome.PreConditionFailed(err)
		}
		if !ok {
			logger.Debug("precondition not satisfied", "index", i, "tag", outcome.Tag(p))
			return outcome.PreConditionFailed(p)
		}
	}
	return nil
}
