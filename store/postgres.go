/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store persists the normalized players and rounds tables to
// Postgres. It is a thin sink over the in-memory tables: one transaction
// per run, all-or-nothing, with re-ingestion of the same event replacing
// its prior rows.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mikeb26/crosstab/crosstab"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Init creates the two output tables if they do not already exist. This is
// bootstrap DDL only; evolving an existing schema is out of scope.
func (s *Store) Init(ctx context.Context) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS players (
		event               TEXT NOT NULL,
		pair_num            INTEGER NOT NULL,
		state               TEXT,
		name                TEXT NOT NULL,
		uscf_id             TEXT,
		pre_rating          INTEGER,
		post_rating         INTEGER,
		total_points        DOUBLE PRECISION NOT NULL,
		rating_change       INTEGER,
		avg_opponent_rating DOUBLE PRECISION,
		PRIMARY KEY (event, pair_num)
	);
	CREATE TABLE IF NOT EXISTS rounds (
		event      TEXT NOT NULL,
		id         INTEGER NOT NULL,
		player_num INTEGER NOT NULL,
		round      INTEGER NOT NULL,
		color      TEXT NOT NULL,
		result     TEXT NOT NULL,
		opponent   INTEGER,
		PRIMARY KEY (event, id)
	);`

	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("unable to create output tables: %w", err)
	}

	return nil
}

// SaveTables writes both relations in a single transaction, first deleting
// any rows a prior ingestion of the same event left behind.
func (s *Store) SaveTables(ctx context.Context, t *crosstab.Tables) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	event := t.Event.Name

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM rounds WHERE event = $1`, event)
	batch.Queue(`DELETE FROM players WHERE event = $1`, event)

	for _, p := range t.Players {
		batch.Queue(`
			INSERT INTO players (
				event, pair_num, state, name, uscf_id, pre_rating,
				post_rating, total_points, rating_change,
				avg_opponent_rating
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			event, p.PairNum, p.State, p.Name, p.UscfID, p.PreRating,
			p.PostRating, p.TotalPoints, p.RatingChange,
			p.AvgOpponentRating)
	}
	for _, r := range t.Rounds {
		batch.Queue(`
			INSERT INTO rounds (
				event, id, player_num, round, color, result, opponent
			) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			event, r.ID, r.PlayerNum, r.Round, r.Color.String(),
			r.Result.String(), r.Opponent)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("unable to write tables: %w", err)
	}

	return tx.Commit(ctx)
}
