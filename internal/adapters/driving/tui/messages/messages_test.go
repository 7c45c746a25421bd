package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewSummary, "summary"},
		{ViewUpload, "upload"},
		{ViewReview, "review"},
		{ViewComplete, "complete"},
		{ViewSuccess, "success"},
		{ViewType(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewForStep(t *testing.T) {
	assert.Equal(t, ViewSummary, ViewForStep(domain.StepSummary))
	assert.Equal(t, ViewUpload, ViewForStep(domain.StepUpload))
	assert.Equal(t, ViewReview, ViewForStep(domain.StepReview))
	assert.Equal(t, ViewComplete, ViewForStep(domain.StepComplete))
	assert.Equal(t, ViewSuccess, ViewForStep(domain.StepSuccess))
	assert.Equal(t, ViewSummary, ViewForStep(domain.Step(42)))
}

func TestViewForStep_MatchesStepNames(t *testing.T) {
	for _, step := range []domain.Step{
		domain.StepSummary, domain.StepUpload, domain.StepReview, domain.StepComplete, domain.StepSuccess,
	} {
		assert.Equal(t, step.String(), ViewForStep(step).String())
	}
}

func TestAdvanceCompleted_CarriesError(t *testing.T) {
	err := errors.New("relay down")
	msg := AdvanceCompleted{From: domain.StepComplete, Err: err}

	assert.Equal(t, domain.StepComplete, msg.From)
	assert.ErrorIs(t, msg.Err, err)
}

func TestAdvanceRequested_Payload(t *testing.T) {
	msg := AdvanceRequested{Payload: driving.CompletePayload{TermsAccepted: true}, Label: "Submitting Application..."}

	assert.Equal(t, domain.StepComplete, msg.Payload.CompletesStep())
	assert.Equal(t, "Submitting Application...", msg.Label)
}
