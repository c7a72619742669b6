package quest

import (
	"context"

	"github.com/jackzampolin/coffeequest/internal/jobs"
)

// RunBatch generates an experience for each user with at most concurrency
// calls in flight. It always returns exactly one result per user, in order.
func (g *Generator) RunBatch(ctx context.Context, users []UserProfile, goal string, concurrency int) []BatchResult {
	g.logger.Info("starting batch", "users", len(users), "concurrency", concurrency)

	results := jobs.FanOut(ctx, users, concurrency,
		func(ctx context.Context, u UserProfile) BatchResult {
			exp, err := g.Generate(ctx, u, goal)
			if err != nil {
				g.logger.Warn("batch item failed", "user", u.Name, "error", err)
				return BatchResult{User: u.Summary(), Error: err.Error()}
			}
			return BatchResult{
				Success:   true,
				User:      exp.User,
				Narrative: exp.Narrative,
				Challenge: &exp.Challenge,
				Reward:    &exp.Reward,
				Progress:  &exp.Progress,
			}
		},
		func(u UserProfile, err error) BatchResult {
			return BatchResult{User: u.Summary(), Error: "not started: " + err.Error()}
		},
	)

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		}
	}
	g.logger.Info("batch complete", "users", len(users), "succeeded", ok)
	return results
}
