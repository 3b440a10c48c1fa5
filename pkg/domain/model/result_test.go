package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

func TestSummaryFold(t *testing.T) {
	t.Run("every token lands in exactly one tally", func(t *testing.T) {
		s := model.NewSummary(types.ActionLock, false)

		s.AddOutcome(model.Outcome{
			Token: "a@x.com", UserID: "u-1", Status: model.OutcomeApplied,
		})
		s.AddResolutionFailure(model.NewResolutionFailure("bad@x.com", goerr.New("not found")))
		s.AddOutcome(model.Outcome{
			Token: "c@x.com", UserID: "u-3", Status: model.OutcomeFailed, Err: goerr.New("locked"),
		})
		s.Finalize()

		gt.Equal(t, s.Attempted, 3)
		gt.Equal(t, s.Attempted, s.ResolutionFailed+s.Applied+s.Skipped+s.ActionFailed)
		gt.Equal(t, s.Applied, 1)
		gt.Equal(t, s.ResolutionFailed, 1)
		gt.Equal(t, s.ActionFailed, 1)
		gt.Equal(t, s.Skipped, 0)
		gt.Equal(t, s.ProcessedCount, 1)
		gt.Equal(t, s.FailedCount, 2)
		gt.False(t, s.Success)
	})

	t.Run("clean run is a success", func(t *testing.T) {
		s := model.NewSummary(types.ActionDelete, true)
		s.AddOutcome(model.Outcome{Token: "a@x.com", UserID: "u-1", Status: model.OutcomeSkipped})
		s.Finalize()

		gt.True(t, s.Success)
		gt.Equal(t, s.ProcessedCount, 1)
		gt.Equal(t, s.FailedCount, 0)
	})
}

func TestSummaryFormat(t *testing.T) {
	t.Run("dry-run line", func(t *testing.T) {
		s := model.NewSummary(types.ActionLock, true)
		for _, tok := range []types.Token{"a@x.com", "b@x.com", "c@x.com"} {
			s.AddOutcome(model.Outcome{Token: tok, UserID: "u", Status: model.OutcomeSkipped})
		}
		s.Finalize()

		gt.Equal(t, s.Format(), "would lock 3 user(s); failed to resolve 0.")
	})

	t.Run("execute line pools resolution and action failures", func(t *testing.T) {
		s := model.NewSummary(types.ActionDelete, false)
		s.AddOutcome(model.Outcome{Token: "a@x.com", UserID: "u-1", Status: model.OutcomeApplied})
		s.AddOutcome(model.Outcome{Token: "b@x.com", UserID: "u-2", Status: model.OutcomeApplied})
		s.AddResolutionFailure(model.NewResolutionFailure("bad@x.com", goerr.New("not found")))
		s.AddOutcome(model.Outcome{Token: "c@x.com", UserID: "u-3", Status: model.OutcomeFailed})
		s.Finalize()

		gt.Equal(t, s.Format(), "delete success for 2 user(s); failures: 2.")
	})
}

func TestResolution(t *testing.T) {
	ok := model.NewResolution("a@x.com", "u-1")
	gt.True(t, ok.Resolved())
	gt.NoError(t, ok.Err)

	bad := model.NewResolutionFailure("b@x.com", goerr.New("not found"))
	gt.False(t, bad.Resolved())
	gt.Error(t, bad.Err)
}
