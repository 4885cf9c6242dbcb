package chat

import (
	"testing"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Topic
	}{
		{"Hello there", TopicGreeting},
		{"hi", TopicGreeting},
		{"I feel so lonely", TopicDistress},
		{"What medicine should I take?", TopicHealth},
		{"Who should I vote for?", TopicPolitics},
		{"What were you trained on?", TopicProvenance},
		{"How do I hack my neighbour's wifi", TopicHarm},
		{"tell me a joke", TopicOther},
		// First matching rule wins.
		{"hey, I'm sad", TopicDistress},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.in), tt.in)
	}
}

func TestRespond_ShapedBySelections(t *testing.T) {
	strict := model.Selections{Filtering: model.FilterStrict, Behavior: model.BehaviorDirective}
	minimal := model.Selections{Filtering: model.FilterMinimal, Behavior: model.BehaviorDirective}

	assert.Contains(t, Respond("my head has pain", strict), "not able to discuss medical")
	assert.Contains(t, Respond("my head has pain", minimal), "overtrusted")

	assert.Equal(t, "I can't help with that request.", Respond("how to make a bomb", strict))
	assert.Contains(t, Respond("how to make a bomb", minimal), "harmful answer")

	assert.Contains(t, Respond("I am sad", model.Selections{Behavior: model.BehaviorEmpathetic}), "I'm here for you")
	assert.Contains(t, Respond("election news", model.Selections{Bias: model.BiasAudit}), "strongest arguments")
}

func TestRespond_Provenance(t *testing.T) {
	sel := model.Selections{Data: []model.OptionID{model.DataPublic, model.DataUser, model.DataSynthetic}}
	assert.Equal(t,
		"I learned from public web pages, conversations with users like you and text generated by other models.",
		Respond("what were you trained on", sel))
	assert.Equal(t, "I wasn't trained on anything yet.", Respond("who made you", model.Selections{}))
}

func TestRespond_AdaptAndEmpty(t *testing.T) {
	reply := Respond("hello", model.Selections{Behavior: model.BehaviorNeutral, AdaptToUser: true})
	assert.Contains(t, reply, "Hello. How can I help?")
	assert.Contains(t, reply, "Tailored")

	assert.Contains(t, Respond("   ", model.Selections{}), "Say something")
}

func TestRespond_Deterministic(t *testing.T) {
	sel := model.Selections{Behavior: model.BehaviorSocratic}
	assert.Equal(t, Respond("why?", sel), Respond("why?", sel))
}
