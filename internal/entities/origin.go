package entities

// Origin tells where a command came from. Only user interaction unpauses a fight.
type Origin string

const (
	OriginUserInteraction Origin = "user_interaction"
	OriginAIAction        Origin = "ai_action"
)
