// Package chat simulates how a configured assistant would answer a message.
// Replies are canned strings picked by keyword and shaped by the build's
// selections; nothing is learned or remembered between calls.
package chat

import (
	"strings"

	"github.com/theirongolddev/ethicsim/internal/model"
)

// Topic is the intent a message was matched to.
type Topic string

const (
	TopicGreeting   Topic = "greeting"
	TopicDistress   Topic = "distress"
	TopicHealth     Topic = "health"
	TopicPolitics   Topic = "politics"
	TopicProvenance Topic = "provenance"
	TopicHarm       Topic = "harm"
	TopicOther      Topic = "other"
)

// rules are checked in order; the first topic with a matching keyword wins.
var rules = []struct {
	topic    Topic
	keywords []string
}{
	{TopicHarm, []string{"weapon", "hack", "hurt someone", "make a bomb", "steal"}},
	{TopicDistress, []string{"sad", "lonely", "depressed", "anxious", "upset", "hopeless"}},
	{TopicHealth, []string{"doctor", "medicine", "symptom", "health", "diagnos", "pain"}},
	{TopicPolitics, []string{"election", "politic", "vote", "government", "news"}},
	{TopicProvenance, []string{"trained", "your data", "learn from", "who made you", "where do you"}},
	{TopicGreeting, []string{"hello", "hi ", "hey", "good morning", "good evening"}},
}

// Classify returns the topic of a message.
func Classify(input string) Topic {
	msg := " " + strings.ToLower(strings.TrimSpace(input)) + " "
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.topic
			}
		}
	}
	return TopicOther
}

// Respond returns the simulated reply of an assistant built with sel.
func Respond(input string, sel model.Selections) string {
	if strings.TrimSpace(input) == "" {
		return "Say something and see how your assistant answers."
	}

	var reply string
	switch Classify(input) {
	case TopicHarm:
		reply = harmReply(sel.Filtering)
	case TopicDistress:
		reply = distressReply(sel.Behavior)
	case TopicHealth:
		reply = healthReply(sel)
	case TopicPolitics:
		reply = politicsReply(sel.Bias)
	case TopicProvenance:
		reply = provenanceReply(sel.Data)
	case TopicGreeting:
		reply = greetingReply(sel.Behavior)
	default:
		reply = defaultReply(sel.Behavior)
	}

	if sel.AdaptToUser {
		reply += " (Tailored to what I remember about you.)"
	}
	return reply
}

func harmReply(f model.OptionID) string {
	switch f {
	case model.FilterStrict:
		return "I can't help with that request."
	case model.FilterAdaptive:
		return "I can't help with causing harm, but if you're researching safety I can point you to general resources."
	case model.FilterModerate:
		return "That looks like a harmful request, so I'll skip it."
	case model.FilterMinimal:
		return "Here is what I found... [minimal filtering let a harmful answer through]"
	}
	return "[no content filtering configured: the request is answered unchecked]"
}

func distressReply(b model.OptionID) string {
	switch b {
	case model.BehaviorEmpathetic:
		return "I'm really sorry you're feeling this way. I'm here for you, and it might help to talk to someone you trust too."
	case model.BehaviorDirective:
		return "Try a short walk, get some sleep and reach out to a friend today."
	case model.BehaviorSocratic:
		return "That sounds hard. What do you think has been weighing on you most?"
	case model.BehaviorNeutral:
		return "Many people feel this way at times. Support services are available if you need them."
	}
	return "I don't have a configured way to respond to this."
}

func healthReply(sel model.Selections) string {
	if sel.Filtering == model.FilterStrict {
		return "I'm not able to discuss medical topics. Please consult a professional."
	}
	switch sel.Behavior {
	case model.BehaviorDirective:
		return "Take an over-the-counter painkiller and rest. [directive advice on health can be overtrusted]"
	case model.BehaviorSocratic:
		return "What have you noticed so far, and have you been able to ask a doctor about it?"
	}
	return "I can share general information, but a medical professional should assess your situation."
}

func politicsReply(b model.OptionID) string {
	switch b {
	case model.BiasIgnore, "":
		return "Here is the view most common in my training data. [untested for political skew]"
	case model.BiasBasic:
		return "There are several perspectives on this. I'll try to summarise the main ones."
	case model.BiasMinimize, model.BiasAudit:
		return "This is contested. Here are the strongest arguments on each side, with sources you can check."
	}
	return "There are several perspectives on this."
}

func provenanceReply(data []model.OptionID) string {
	if len(data) == 0 {
		return "I wasn't trained on anything yet."
	}
	names := make([]string, len(data))
	for i, id := range data {
		names[i] = sourceName(id)
	}
	return "I learned from " + joinList(names) + "."
}

func sourceName(id model.OptionID) string {
	switch id {
	case model.DataPublic:
		return "public web pages"
	case model.DataLicensed:
		return "licensed books and articles"
	case model.DataUser:
		return "conversations with users like you"
	case model.DataSynthetic:
		return "text generated by other models"
	case model.DataCurated:
		return "a corpus curated by experts"
	}
	return string(id)
}

func greetingReply(b model.OptionID) string {
	switch b {
	case model.BehaviorEmpathetic:
		return "Hi! It's lovely to hear from you. How are you feeling today?"
	case model.BehaviorDirective:
		return "Hello. What do you need done?"
	case model.BehaviorSocratic:
		return "Hello! What would you like to explore today?"
	}
	return "Hello. How can I help?"
}

func defaultReply(b model.OptionID) string {
	if b == model.BehaviorSocratic {
		return "Interesting. What makes you ask?"
	}
	return "I'm a simulated assistant. Try asking about your health, the news, or how I was trained."
}

func joinList(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
