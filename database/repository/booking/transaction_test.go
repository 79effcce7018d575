package bookingRepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestClassifyTxnError(t *testing.T) {
	writeConflict := mongo.CommandError{
		Code:    112,
		Name:    "WriteConflict",
		Message: "Write conflict during plan execution",
		Labels:  []string{"TransientTransactionError"},
	}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"stale version", ErrVersionConflict, ErrVersionConflict},
		{"write conflict on update", fmt.Errorf("update listing failed: %w", writeConflict), ErrVersionConflict},
		{"write conflict without label", mongo.CommandError{Code: 112}, ErrVersionConflict},
		{"write conflict in write errors", mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 112, Message: "WriteConflict"}},
		}, ErrVersionConflict},
		{"transient label only", mongo.CommandError{Code: 251, Labels: []string{"TransientTransactionError"}}, ErrVersionConflict},
		{"unknown commit result", mongo.CommandError{
			Code:   50,
			Labels: []string{"UnknownTransactionCommitResult"},
		}, ErrCommitUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyTxnError(tc.err), tc.want)
		})
	}
}

func TestClassifyTxnError_OtherFailuresAreWrapped(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}}}

	err := classifyTxnError(fmt.Errorf("insert booking failed: %w", dup))
	assert.False(t, errors.Is(err, ErrVersionConflict))
	assert.False(t, errors.Is(err, ErrCommitUnknown))
	assert.True(t, mongo.IsDuplicateKeyError(err))
	assert.Contains(t, err.Error(), "booking transaction failed")
}
