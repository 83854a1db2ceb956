package nlp

import (
	"strings"
	"testing"
)

func TestKeywordBotGreeting(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("Hello")
	if reply != GreetingMenu {
		t.Fatalf("expected greeting menu, got %q", reply)
	}
}

func TestKeywordBotFirstRuleWins(t *testing.T) {
	bot := NewKeywordBot()

	// "how are you" outranks the joke rule
	reply := bot.Respond("How are you? Tell me a joke")
	if !strings.Contains(reply, "I'm just a bot") {
		t.Fatalf("expected small-talk reply, got %q", reply)
	}
}

func TestKeywordBotJoke(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("tell me a joke")
	if !strings.Contains(reply, "dark mode") {
		t.Fatalf("expected programmer joke, got %q", reply)
	}

	// joke rule precedes the thanks rule in the cascade
	reply = bot.Respond("thanks for the joke")
	if !strings.Contains(reply, "dark mode") {
		t.Fatalf("expected joke rule to win over thanks, got %q", reply)
	}
}

func TestKeywordBotStudyTipsByField(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("any study tips for programming?")
	if !strings.Contains(reply, "programming study tips") {
		t.Fatalf("expected programming tips, got %q", reply)
	}

	general := bot.Respond("study tips please")
	if !strings.Contains(general, "general study tips") {
		t.Fatalf("expected general tips, got %q", general)
	}
}

func TestKeywordBotSubjectCode(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("give me an overview of IT01")
	if !strings.Contains(reply, "Programming Fundamentals") || !strings.Contains(reply, "IT01") {
		t.Fatalf("expected IT01 overview, got %q", reply)
	}
}

func TestKeywordBotFAQ(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("please explain loops for me")
	if !strings.Contains(reply, "Loops are control structures") {
		t.Fatalf("expected loops answer, got %q", reply)
	}
	if !strings.Contains(reply, "Programming Fundamentals") {
		t.Fatalf("expected subject attribution, got %q", reply)
	}
}

func TestKeywordBotShortInputAsksForClarification(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("zebra curling")
	if !strings.Contains(reply, "clarify your question") {
		t.Fatalf("expected clarification prompt, got %q", reply)
	}
}

func TestKeywordBotUnknownFallsBackToMenu(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("qqq www eee rrr")
	if reply != GreetingMenu {
		t.Fatalf("expected greeting menu fallback, got %q", reply)
	}
}

func TestKeywordBotThanks(t *testing.T) {
	bot := NewKeywordBot()

	reply := bot.Respond("thanks so much")
	if !strings.Contains(reply, "You're welcome") {
		t.Fatalf("expected acknowledgement, got %q", reply)
	}
}
