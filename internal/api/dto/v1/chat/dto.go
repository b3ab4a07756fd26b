package chat

// ChatRequest represents a chat widget message
type ChatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// ChatResponse carries the scripted reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatError is returned when the message is empty
type ChatError struct {
	Error string `json:"error"`
}
