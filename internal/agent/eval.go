package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-gym/internal/env"
)

// EpisodeResult summarizes one evaluated episode.
type EpisodeResult struct {
	Episode int
	Reward  float64
	Steps   int
	// Truncated is set when the step limit ended the episode before done.
	Truncated bool
}

// ErrNoEpisodes is returned when Evaluate is asked for zero episodes.
var ErrNoEpisodes = errors.New("agent: episodes must be positive")

// Evaluate plays episodes with policy and returns one result per episode.
// An episode runs from Reset until done or maxSteps (0 means unlimited).
// On cancellation the finished episodes are returned with ctx.Err().
func Evaluate(ctx context.Context, e env.Env, policy Policy, episodes, maxSteps int) ([]EpisodeResult, error) {
	if episodes <= 0 {
		return nil, ErrNoEpisodes
	}

	results := make([]EpisodeResult, 0, episodes)
	for ep := 1; ep <= episodes; ep++ {
		obs := e.Reset()
		res := EpisodeResult{Episode: ep}
		for {
			if err := ctx.Err(); err != nil {
				return results, fmt.Errorf("agent: evaluation stopped in episode %d: %w", ep, err)
			}
			var reward float64
			var done bool
			obs, reward, done, _ = e.Step(policy.Act(obs))
			res.Reward += reward
			res.Steps++
			if done {
				break
			}
			if maxSteps > 0 && res.Steps >= maxSteps {
				res.Truncated = true
				break
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// MeanReward averages the rewards of results.
func MeanReward(results []EpisodeResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Reward
	}
	return sum / float64(len(results))
}
