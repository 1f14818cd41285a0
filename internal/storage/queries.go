package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/minsu-k/go-lol-metrics/internal/model"
)

// MatchRow is one row of the matches table, without the report body.
type MatchRow struct {
	MatchID      string
	PUUID        string
	Champion     string
	Role         string
	Win          bool
	Kills        int
	Deaths       int
	Assists      int
	GameDuration int
	Rank         string
}

// ReportExists returns true if a report for the match/player pair is already stored.
func (db *DB) ReportExists(matchID, puuid string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE match_id = ? AND puuid = ?", matchID, puuid).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveReport stores a decision report plus its per-death rows in a
// transaction. Uses INSERT OR REPLACE for idempotency: re-analyzing the
// same match overwrites the previous rows.
func (db *DB) SaveReport(puuid string, r *model.DecisionReport) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO matches(match_id, puuid, champion, role, win, kills, deaths, assists, game_duration, rank, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, puuid, r.PlayerInfo.Champion, r.PlayerInfo.Role, boolInt(r.PlayerInfo.Win),
		r.PlayerInfo.Kills, r.PlayerInfo.Deaths, r.PlayerInfo.Assists,
		r.GameDurationSec, r.PlayerInfo.Rank, string(body),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", r.MatchID, err)
	}

	if _, err := tx.Exec("DELETE FROM deaths WHERE match_id = ? AND puuid = ?", r.MatchID, puuid); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO deaths(match_id, puuid, seq, timestamp_ms, location_type, death_context, gold_diff)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, d := range r.DeathAnalyses {
		_, err = stmt.Exec(r.MatchID, puuid, i, d.TimestampMs, d.LocationType, d.DeathContext, d.GoldDiffBeforeDeath)
		if err != nil {
			return fmt.Errorf("insert death %d for %s: %w", i, r.MatchID, err)
		}
	}
	return tx.Commit()
}

// ListMatches returns stored match rows for a player, newest match id first.
// An empty puuid lists everything.
func (db *DB) ListMatches(puuid string) ([]MatchRow, error) {
	query := `
		SELECT match_id, puuid, champion, role, win, kills, deaths, assists, game_duration, rank
		FROM matches`
	var args []any
	if puuid != "" {
		query += " WHERE puuid = ?"
		args = append(args, puuid)
	}
	query += " ORDER BY match_id DESC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchRow
	for rows.Next() {
		var m MatchRow
		var winInt int
		if err := rows.Scan(&m.MatchID, &m.PUUID, &m.Champion, &m.Role, &winInt,
			&m.Kills, &m.Deaths, &m.Assists, &m.GameDuration, &m.Rank); err != nil {
			return nil, err
		}
		m.Win = winInt != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetReport loads the stored report for the first match whose id starts
// with the given prefix. Returns nil when nothing matches.
func (db *DB) GetReport(matchIDPrefix, puuid string) (*model.DecisionReport, error) {
	query := "SELECT report_json FROM matches WHERE match_id LIKE ?"
	args := []any{matchIDPrefix + "%"}
	if puuid != "" {
		query += " AND puuid = ?"
		args = append(args, puuid)
	}
	query += " LIMIT 1"

	var body string
	err := db.conn.QueryRow(query, args...).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var r model.DecisionReport
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}

// SaveProfile stores (or replaces) a playstyle profile.
func (db *DB) SaveProfile(puuid string, p *model.PlaystyleProfile) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO profiles(puuid, summoner_name, rank, total_games, win_rate, profile_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))`,
		puuid, p.SummonerName, p.Rank, p.TotalGames, p.WinRate, string(body),
	)
	return err
}

// GetProfile loads the stored profile for a player. Returns nil when
// none is stored.
func (db *DB) GetProfile(puuid string) (*model.PlaystyleProfile, error) {
	var body string
	err := db.conn.QueryRow("SELECT profile_json FROM profiles WHERE puuid = ?", puuid).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p model.PlaystyleProfile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// QueryRaw runs an arbitrary query and returns column names plus rows
// rendered as strings, NULL as "".
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
