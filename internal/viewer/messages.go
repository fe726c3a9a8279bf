package viewer

// Message keys emitted by the Service. The UI localization translates them;
// defaultTexts is used when no Translator is set or a key is missing.
const (
	MsgPleaseEnterURL        = "msg_please_enter_url"
	MsgPleaseEnterQuestion   = "msg_please_enter_question"
	MsgExtractFirst          = "msg_extract_first"
	MsgTranscriptExtracted   = "msg_transcript_extracted"
	MsgAnswerReceived        = "msg_answer_received"
	MsgHistoryCleared        = "msg_history_cleared"
	MsgNoTranscriptDownload  = "msg_no_transcript_download"
	MsgTranscriptDownloaded  = "msg_transcript_downloaded"
	MsgDownloadFailed        = "msg_download_failed"
	MsgErrorPrefix           = "msg_error_prefix"
	MsgUnknownError          = "msg_unknown_error"
	MsgBackendUnreachable    = "msg_backend_unreachable"
	MsgAnsweringUnconfigured = "msg_answering_unconfigured"
)

var defaultTexts = map[string]string{
	MsgPleaseEnterURL:        "Please enter a YouTube URL",
	MsgPleaseEnterQuestion:   "Please enter a question",
	MsgExtractFirst:          "Please extract a transcript first",
	MsgTranscriptExtracted:   "Transcript extracted successfully!",
	MsgAnswerReceived:        "Answer received!",
	MsgHistoryCleared:        "Chat history cleared",
	MsgNoTranscriptDownload:  "No transcript to download",
	MsgTranscriptDownloaded:  "Transcript downloaded!",
	MsgDownloadFailed:        "Download failed",
	MsgErrorPrefix:           "Error: ",
	MsgUnknownError:          "Unknown error occurred",
	MsgBackendUnreachable:    "Backend unreachable",
	MsgAnsweringUnconfigured: "AI answering is not configured on the server",
}

// DefaultText returns the English text for a message key
func DefaultText(key string) string {
	if text, ok := defaultTexts[key]; ok {
		return text
	}
	return key
}

// MessageKeys lists every key the Service may emit
func MessageKeys() []string {
	keys := make([]string, 0, len(defaultTexts))
	for key := range defaultTexts {
		keys = append(keys, key)
	}
	return keys
}
