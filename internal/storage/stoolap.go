package storage

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"

	// Enregistre le driver database/sql "stoolap"
	_ "github.com/stoolap/stoolap/pkg/driver"
)

// Stoolap est le Store embarqué : une base stoolap dans un fichier local,
// utilisée quand aucun Redis n'est configuré. Zéro dépendance externe au
// runtime, le fichier joue le rôle du localStorage.
type Stoolap struct {
	db *sql.DB

	// La base fichier n'a que ce processus comme écrivain : sérialiser les
	// écritures ici suffit à rendre l'UPDATE-puis-INSERT atomique (deux
	// onglets du même navigateur peuvent écrire la même clé en parallèle).
	mu sync.Mutex
}

// NewStoolap ouvre (ou crée) la base locale. dsn : "file://chemin" ou
// "memory://" pour une base volatile.
func NewStoolap(dsn string) (*Stoolap, error) {
	db, err := sql.Open("stoolap", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_records (k TEXT, v TEXT)`); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_kv_records_k ON kv_records(k)`); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("✅ Stockage local stoolap ouvert:", dsn)
	return &Stoolap{db: db}, nil
}

func (s *Stoolap) Get(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv_records WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *Stoolap) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE kv_records SET v = ? WHERE k = ?`, string(value), key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO kv_records (k, v) VALUES (?, ?)`, key, string(value))
	return err
}

func (s *Stoolap) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE k = ?`, k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stoolap) Close() error {
	return s.db.Close()
}
