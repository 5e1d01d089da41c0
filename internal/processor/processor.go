package processor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ledgergames/battleship/internal/apperror"
	"github.com/ledgergames/battleship/internal/battleship"
	"github.com/ledgergames/battleship/internal/entity"
)

// Verdict statuses reported back to the host ledger.
const (
	StatusApplied  = "applied"
	StatusRejected = "rejected"
)

// Verdict is the outcome of executing one transaction: either the action
// was applied, or it was rejected with a stable reason. Rejection is final
// for that action instance; the submitter must resubmit a corrected one.
type Verdict struct {
	Name       string `json:"name,omitempty"`
	Action     string `json:"action,omitempty"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Structural bool   `json:"structural,omitempty"`
}

// rejectionReasons lists every sentinel a validation rejection can carry.
// Anything else coming out of Validate is a store failure, not a verdict.
var rejectionReasons = []error{
	apperror.ErrNameNotSet,
	apperror.ErrActionNotSet,
	apperror.ErrInvalidName,
	apperror.ErrUnknownAction,
	apperror.ErrNameTaken,
	apperror.ErrGameNotFound,
	apperror.ErrGameStarted,
	apperror.ErrGameNotStarted,
	apperror.ErrGameComplete,
	apperror.ErrInvalidBoard,
	apperror.ErrAlreadyJoined,
	apperror.ErrNotYourTurn,
	apperror.ErrCellAlreadyFired,
	entity.ErrInvalidColumn,
	entity.ErrInvalidRow,
}

func isStoreFailure(err error) bool {
	for _, reason := range rejectionReasons {
		if errors.Is(err, reason) {
			return false
		}
	}
	return true
}

// Processor runs the validate-then-apply pair for each transaction in the
// serial order the host ledger supplies. It holds no state of its own
// between calls; every execution re-reads the record it touches.
type Processor struct {
	logger *slog.Logger
	store  battleship.GameStore
}

func New(logger *slog.Logger, store battleship.GameStore) *Processor {
	return &Processor{
		logger: logger.With("component", "processor"),
		store:  store,
	}
}

// Execute decodes and runs a single raw transaction submitted by signer.
// A malformed or illegal transaction produces a rejected verdict, never an
// error; the returned error is reserved for store failures, where neither
// acceptance nor rejection can be decided.
func (that *Processor) Execute(ctx context.Context, raw []byte, signer string) (*Verdict, error) {
	var txn battleship.Transaction
	if err := json.Unmarshal(raw, &txn); err != nil {
		that.logger.Debug("malformed transaction", "signer", signer, "error", err)

		return &Verdict{
			Status:     StatusRejected,
			Reason:     "malformed transaction: " + err.Error(),
			Structural: true,
		}, nil
	}
	txn.Signer = signer

	if err := battleship.Validate(ctx, &txn, that.store); err != nil {
		if isStoreFailure(err) {
			return nil, err
		}

		that.logger.Debug("invalid transaction",
			"name", txn.Name, "action", txn.Action, "signer", signer, "error", err)

		return &Verdict{
			Name:       txn.Name,
			Action:     txn.Action,
			Status:     StatusRejected,
			Reason:     err.Error(),
			Structural: battleship.IsStructural(err),
		}, nil
	}

	if err := battleship.Apply(ctx, &txn, that.store); err != nil {
		return nil, err
	}

	that.logger.Info("transaction applied",
		"name", txn.Name, "action", txn.Action, "signer", signer)

	return &Verdict{
		Name:   txn.Name,
		Action: txn.Action,
		Status: StatusApplied,
	}, nil
}
