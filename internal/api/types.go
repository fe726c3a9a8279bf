package api

// TranscriptRequest is the body of POST /api/transcript
type TranscriptRequest struct {
	URL string `json:"url"`
}

// TranscriptResponse is returned by POST /api/transcript
type TranscriptResponse struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript,omitempty"`
	VideoID    string `json:"video_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// QuestionRequest is the body of POST /api/question
type QuestionRequest struct {
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
}

// AnswerResponse is returned by POST /api/question
type AnswerResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIKeyMissing is the openai_api_key value reported when the server has no key
const APIKeyMissing = "missing"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status       string `json:"status"`
	OpenAIAPIKey string `json:"openai_api_key"`
	Message      string `json:"message"`
}

// AnsweringConfigured reports whether the server can answer questions
func (h *HealthResponse) AnsweringConfigured() bool {
	return h.OpenAIAPIKey != APIKeyMissing
}
