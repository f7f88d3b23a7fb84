package llm

// User-facing fallback sentences. These are part of the product's wire
// behavior, not placeholders: an empty upstream reply and an unknown
// provider tag both degrade to a normal assistant message.
const (
	NoResponseFallback          = "応答がありませんでした。"
	UnsupportedProviderFallback = "このプロバイダーはまだサポートされていません。"
)
