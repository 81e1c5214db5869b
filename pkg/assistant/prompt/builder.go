package prompt

import (
	"fmt"
	"strings"
)

// Input carries everything the composer needs for one turn.
type Input struct {
	AssistantName string
	Instructions  string
	Arabic        bool
	ContextBlock  string
	Override      string // full caller-supplied prompt, skips the templates
}

const englishTemplate = `You are %s, a business assistant.

Instructions: %s

Capabilities:
- You remember earlier turns of this conversation.
- You may reference the user's connected email and calendar data when it is provided below.
- Always answer in the language the user just used.`

const arabicTemplate = `أنت %s، مساعد أعمال.

التعليمات: %s

القدرات:
- تتذكر الأدوار السابقة من هذه المحادثة.
- يمكنك الرجوع إلى بيانات البريد الإلكتروني والتقويم المتصلة عند توفرها أدناه.
- أجب دائماً باللغة التي استخدمها المستخدم للتو.`

const contextHeader = "--- CURRENT BUSINESS CONTEXT ---"
const contextFooter = "--- END CONTEXT ---"

// Compose builds the system prompt. Output is deterministic for a
// given input.
func Compose(in Input) string {
	if in.Override != "" {
		return in.Override
	}

	template := englishTemplate
	if in.Arabic {
		template = arabicTemplate
	}

	composed := fmt.Sprintf(template, in.AssistantName, in.Instructions)

	if strings.TrimSpace(in.ContextBlock) != "" {
		composed += "\n\n" + contextHeader + "\n" + in.ContextBlock + "\n" + contextFooter
	}

	return composed
}
