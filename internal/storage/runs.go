package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EpisodeRecord is one evaluated episode.
type EpisodeRecord struct {
	Episode   int
	Reward    float64
	Steps     int
	Truncated bool
}

// EvalRun is one evaluation of a policy on a game.
type EvalRun struct {
	ID         string
	GameID     string
	Policy     string
	Seed       int64
	Episodes   int
	MeanReward float64
	CreatedAt  time.Time
}

// SaveRun stores a run and its episodes in one transaction. An empty
// run.ID gets a fresh UUID; the ID used is returned.
func (s *Store) SaveRun(ctx context.Context, run EvalRun, episodes []EpisodeRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO eval_runs (id, game_id, policy, seed, episodes, mean_reward)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Policy, run.Seed, len(episodes), run.MeanReward,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO eval_episodes (run_id, episode, reward, steps, truncated) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare episode insert: %w", err)
	}
	defer stmt.Close()

	for _, ep := range episodes {
		if _, err := stmt.ExecContext(ctx, run.ID, ep.Episode, ep.Reward, ep.Steps, ep.Truncated); err != nil {
			return "", fmt.Errorf("storage: cannot save episode %d: %w", ep.Episode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns the latest runs, optionally for one game ("" for all).
func (s *Store) RecentRuns(ctx context.Context, gameID string, limit int) ([]EvalRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, policy, seed, episodes, mean_reward, created_at
		 FROM eval_runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []EvalRun
	for rows.Next() {
		var r EvalRun
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Policy, &r.Seed, &r.Episodes, &r.MeanReward, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunEpisodes returns the episodes of a run in order.
func (s *Store) RunEpisodes(ctx context.Context, runID string) ([]EpisodeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT episode, reward, steps, truncated FROM eval_episodes WHERE run_id = ? ORDER BY episode`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var eps []EpisodeRecord
	for rows.Next() {
		var e EpisodeRecord
		if err := rows.Scan(&e.Episode, &e.Reward, &e.Steps, &e.Truncated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan episode: %w", err)
		}
		eps = append(eps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return eps, nil
}
