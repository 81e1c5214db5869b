package prompt

import (
	"strings"
	"testing"
)

func TestComposeChoosesTemplateByLanguage(t *testing.T) {
	in := Input{
		AssistantName: "Modern",
		Instructions:  "Be concise.",
	}

	in.Arabic = false
	english := Compose(in)
	if !strings.Contains(english, "You are Modern, a business assistant.") {
		t.Errorf("english prompt missing header: %q", english)
	}
	if !strings.Contains(english, "Be concise.") {
		t.Errorf("english prompt missing instructions: %q", english)
	}

	in.Arabic = true
	arabic := Compose(in)
	if !strings.Contains(arabic, "أنت Modern، مساعد أعمال.") {
		t.Errorf("arabic prompt missing header: %q", arabic)
	}
	if !strings.Contains(arabic, "Be concise.") {
		t.Errorf("arabic prompt missing instructions: %q", arabic)
	}
}

func TestComposeAppendsContextBlock(t *testing.T) {
	in := Input{
		AssistantName: "Modern",
		Instructions:  "none",
		ContextBlock:  "Recent email (2 unread):\n1. From: a@b.c",
	}

	got := Compose(in)
	if !strings.Contains(got, contextHeader) {
		t.Errorf("prompt missing context header: %q", got)
	}
	if !strings.Contains(got, contextFooter) {
		t.Errorf("prompt missing context footer: %q", got)
	}
	if !strings.Contains(got, "From: a@b.c") {
		t.Errorf("prompt missing context body: %q", got)
	}

	in.ContextBlock = ""
	without := Compose(in)
	if strings.Contains(without, contextHeader) {
		t.Errorf("prompt should have no context section when block is empty: %q", without)
	}

	in.ContextBlock = "   \n"
	blank := Compose(in)
	if strings.Contains(blank, contextHeader) {
		t.Errorf("whitespace-only block must not add a context section: %q", blank)
	}
}

func TestComposeOverrideBypassesTemplates(t *testing.T) {
	in := Input{
		AssistantName: "Modern",
		Instructions:  "Be concise.",
		Arabic:        true,
		ContextBlock:  "something",
		Override:      "You are a pirate.",
	}

	got := Compose(in)
	if got != "You are a pirate." {
		t.Errorf("override must be returned verbatim, got %q", got)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	in := Input{
		AssistantName: "Modern",
		Instructions:  "Be concise.",
		Arabic:        true,
		ContextBlock:  "Upcoming calendar events (next 7 days):\n1. Board Sync",
	}

	first := Compose(in)
	for i := 0; i < 5; i++ {
		if got := Compose(in); got != first {
			t.Fatalf("Compose is not deterministic: %q != %q", got, first)
		}
	}
}
