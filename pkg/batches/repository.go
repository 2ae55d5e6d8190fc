// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package batches

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/moov-io/giro/pkg/id"
	"github.com/moov-io/giro/pkg/model"
)

type Repository interface {
	GetBatches() ([]*Batch, error)
	GetBatch(batchID id.Batch) (*Batch, error)
	GetBatchContents(batchID id.Batch) ([]byte, error)

	SaveBatch(batch *Batch, contents []byte) error
	DeleteBatch(batchID id.Batch) error
}

func NewRepo(db *sql.DB) Repository {
	return &sqlRepo{db: db}
}

type sqlRepo struct {
	db *sql.DB
}

const batchColumns = `batch_id, organisation, file_name, detail_count, total_amount_cents, hash_total, source_sha256, created_at`

func scanBatch(row interface{ Scan(...interface{}) error }) (*Batch, error) {
	batch := &Batch{}
	var cents int64
	err := row.Scan(
		&batch.BatchID,
		&batch.Organisation,
		&batch.FileName,
		&batch.DetailCount,
		&cents,
		&batch.HashTotal,
		&batch.SourceSHA256,
		&batch.Created,
	)
	if batch.BatchID == "" || err != nil {
		return nil, err
	}
	amt, err := model.NewAmountFromInt("SGD", cents)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %v", batch.BatchID, err)
	}
	batch.TotalAmount = *amt
	return batch, nil
}

func (r *sqlRepo) GetBatches() ([]*Batch, error) {
	query := fmt.Sprintf(`select %s from batches where deleted_at is null order by created_at desc`, batchColumns)
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}
	return out, rows.Err()
}

func (r *sqlRepo) GetBatch(batchID id.Batch) (*Batch, error) {
	query := fmt.Sprintf(`select %s from batches where batch_id = ? and deleted_at is null limit 1`, batchColumns)
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	batch, err := scanBatch(stmt.QueryRow(batchID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return batch, err
}

func (r *sqlRepo) GetBatchContents(batchID id.Batch) ([]byte, error) {
	query := `select f.contents from batch_files as f
inner join batches as b on f.batch_id = b.batch_id
where f.batch_id = ? and b.deleted_at is null
limit 1`
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var contents []byte
	if err := stmt.QueryRow(batchID).Scan(&contents); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return contents, nil
}

func (r *sqlRepo) SaveBatch(batch *Batch, contents []byte) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	query := `insert into batches (batch_id, organisation, file_name, detail_count, total_amount_cents, hash_total, source_sha256, created_at) values (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return err
	}
	_, err = stmt.Exec(
		batch.BatchID,
		batch.Organisation,
		batch.FileName,
		batch.DetailCount,
		batch.TotalAmount.Int64(),
		batch.HashTotal,
		batch.SourceSHA256,
		batch.Created,
	)
	stmt.Close()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save batch %s: %v", batch.BatchID, err)
	}

	query = `insert into batch_files (batch_id, contents) values (?, ?)`
	stmt, err = tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return err
	}
	_, err = stmt.Exec(batch.BatchID, contents)
	stmt.Close()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save batch %s contents: %v", batch.BatchID, err)
	}

	return tx.Commit()
}

func (r *sqlRepo) DeleteBatch(batchID id.Batch) error {
	query := `update batches set deleted_at = ? where batch_id = ? and deleted_at is null`
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(time.Now(), batchID)
	return err
}
