// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package batches

import (
	"github.com/moov-io/giro/pkg/id"
)

type MockRepository struct {
	Batches  []*Batch
	Contents []byte
	Err      error

	Saved   []*Batch
	Deleted []id.Batch
}

func (r *MockRepository) GetBatches() ([]*Batch, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Batches, nil
}

func (r *MockRepository) GetBatch(batchID id.Batch) (*Batch, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if len(r.Batches) > 0 {
		return r.Batches[0], nil
	}
	return nil, nil
}

func (r *MockRepository) GetBatchContents(batchID id.Batch) ([]byte, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Contents, nil
}

func (r *MockRepository) SaveBatch(batch *Batch, contents []byte) error {
	if r.Err != nil {
		return r.Err
	}
	r.Saved = append(r.Saved, batch)
	r.Contents = contents
	return nil
}

func (r *MockRepository) DeleteBatch(batchID id.Batch) error {
	if r.Err != nil {
		return r.Err
	}
	r.Deleted = append(r.Deleted, batchID)
	return nil
}
