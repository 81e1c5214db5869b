package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

const (
	// DefaultAssistantName is used when the settings row is lazily created.
	DefaultAssistantName = "Modern"

	// DefaultSystemInstructions seeds the settings singleton. Bilingual on
	// purpose: the instructions are embedded verbatim into both templates.
	DefaultSystemInstructions = `أنت مساعد أعمال ذكي. ساعد المستخدم في إدارة أعماله ومهامه ومراسلاته بدقة واحترافية.
You are a smart business assistant. Help the user manage their business, tasks and correspondence accurately and professionally.`
)

// ConversationTitleMaxLen is the number of characters kept from the first
// user message when a conversation is created without a title.
const ConversationTitleMaxLen = 50

// Fallback replies persisted as the assistant message when the upstream
// completion call fails. Each completion-error class maps to exactly one
// constant so the persisted content is byte-for-byte reproducible.
const (
	FallbackRateLimited = `عذراً، هناك ضغط كبير على الخدمة في الوقت الحالي. يرجى المحاولة مرة أخرى بعد قليل.
Sorry, the assistant is experiencing high demand right now. Please try again shortly.`

	FallbackUnavailable = `عذراً، تعذر الوصول إلى خدمة الذكاء الاصطناعي. يرجى التحقق من الاتصال والمحاولة مرة أخرى.
Sorry, I could not reach the AI service. Please check the connection and try again.`

	FallbackUnknown = `عذراً، حدث خطأ غير متوقع أثناء معالجة رسالتك. يرجى المحاولة مرة أخرى.
Sorry, something unexpected went wrong while processing your message. Please try again.`

	FallbackEmptyReply = `عذراً، لم أتمكن من توليد رد هذه المرة. حاول إعادة صياغة رسالتك.
Sorry, I could not generate a reply this time. Try rephrasing your message.`
)
