package ui

import (
	"sync"

	"github.com/ytget/yt-transcript-qa/internal/viewer"
)

// Localization manages UI text translations. It also translates the
// viewer.Msg* keys emitted by the controller, so it is safe for concurrent use.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyBackendURL          = "backend_url"
	KeyDownloadDirectory   = "download_directory"
	KeyRequestTimeout      = "request_timeout"
	KeyRevealAfterDownload = "reveal_after_download"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyEnterURL            = "enter_url"
	KeyExtract             = "extract"
	KeyExtracting          = "extracting"
	KeyExtractingOverlay   = "extracting_overlay"
	KeyTranscript          = "transcript"
	KeyDownloadTranscript  = "download_transcript"
	KeyWatchOnYouTube      = "watch_on_youtube"
	KeyOpenPlayer          = "open_player"
	KeyAskTitle            = "ask_title"
	KeyEnterQuestion       = "enter_question"
	KeyAsk                 = "ask"
	KeyThinking            = "thinking"
	KeyThinkingOverlay     = "thinking_overlay"
	KeySuggestSummary      = "suggest_summary"
	KeySuggestKeyPoints    = "suggest_key_points"
	KeySuggestConclusion   = "suggest_conclusion"
	KeyAnswer              = "answer"
	KeyHistory             = "history"
	KeyClearHistory        = "clear_history"
	KeyErrorOpeningFile    = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "YT Transcript Q&A",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyBackendURL:          "Backend URL",
		KeyDownloadDirectory:   "Download Directory",
		KeyRequestTimeout:      "Request Timeout (seconds, 0 = none)",
		KeyRevealAfterDownload: "Show saved transcript in file manager",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyEnterURL:            "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyExtract:             "Extract Transcript",
		KeyExtracting:          "Extracting...",
		KeyExtractingOverlay:   "Extracting transcript from YouTube...",
		KeyTranscript:          "Transcript",
		KeyDownloadTranscript:  "Download",
		KeyWatchOnYouTube:      "Watch on YouTube",
		KeyOpenPlayer:          "Open player",
		KeyAskTitle:            "Ask about this video",
		KeyEnterQuestion:       "Ask a question about the video...",
		KeyAsk:                 "Ask AI",
		KeyThinking:            "Thinking...",
		KeyThinkingOverlay:     "Getting AI answer...",
		KeySuggestSummary:      "Summarize this video",
		KeySuggestKeyPoints:    "What are the key points?",
		KeySuggestConclusion:   "What is the main conclusion?",
		KeyAnswer:              "Answer",
		KeyHistory:             "Chat History",
		KeyClearHistory:        "Clear",
		KeyErrorOpeningFile:    "Error opening file",

		viewer.MsgPleaseEnterURL:        "Please enter a YouTube URL",
		viewer.MsgPleaseEnterQuestion:   "Please enter a question",
		viewer.MsgExtractFirst:          "Please extract a transcript first",
		viewer.MsgTranscriptExtracted:   "Transcript extracted successfully!",
		viewer.MsgAnswerReceived:        "Answer received!",
		viewer.MsgHistoryCleared:        "Chat history cleared",
		viewer.MsgNoTranscriptDownload:  "No transcript to download",
		viewer.MsgTranscriptDownloaded:  "Transcript downloaded!",
		viewer.MsgDownloadFailed:        "Download failed",
		viewer.MsgErrorPrefix:           "Error: ",
		viewer.MsgUnknownError:          "Unknown error occurred",
		viewer.MsgBackendUnreachable:    "Backend unreachable",
		viewer.MsgAnsweringUnconfigured: "AI answering is not configured on the server",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "YT Транскрипт и вопросы",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyBackendURL:          "Адрес сервера",
		KeyDownloadDirectory:   "Папка загрузок",
		KeyRequestTimeout:      "Таймаут запроса (секунды, 0 = без ограничения)",
		KeyRevealAfterDownload: "Показывать сохранённый файл в файловом менеджере",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyEnterURL:            "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyExtract:             "Получить транскрипт",
		KeyExtracting:          "Получение...",
		KeyExtractingOverlay:   "Получение транскрипта с YouTube...",
		KeyTranscript:          "Транскрипт",
		KeyDownloadTranscript:  "Скачать",
		KeyWatchOnYouTube:      "Смотреть на YouTube",
		KeyOpenPlayer:          "Открыть плеер",
		KeyAskTitle:            "Спросите о видео",
		KeyEnterQuestion:       "Задайте вопрос о видео...",
		KeyAsk:                 "Спросить ИИ",
		KeyThinking:            "Думаю...",
		KeyThinkingOverlay:     "Получение ответа ИИ...",
		KeySuggestSummary:      "Кратко перескажи видео",
		KeySuggestKeyPoints:    "Какие ключевые моменты?",
		KeySuggestConclusion:   "Какой главный вывод?",
		KeyAnswer:              "Ответ",
		KeyHistory:             "История чата",
		KeyClearHistory:        "Очистить",
		KeyErrorOpeningFile:    "Ошибка открытия файла",

		viewer.MsgPleaseEnterURL:        "Пожалуйста, введите URL YouTube",
		viewer.MsgPleaseEnterQuestion:   "Пожалуйста, введите вопрос",
		viewer.MsgExtractFirst:          "Сначала получите транскрипт",
		viewer.MsgTranscriptExtracted:   "Транскрипт успешно получен!",
		viewer.MsgAnswerReceived:        "Ответ получен!",
		viewer.MsgHistoryCleared:        "История чата очищена",
		viewer.MsgNoTranscriptDownload:  "Нет транскрипта для скачивания",
		viewer.MsgTranscriptDownloaded:  "Транскрипт сохранён!",
		viewer.MsgDownloadFailed:        "Ошибка сохранения",
		viewer.MsgErrorPrefix:           "Ошибка: ",
		viewer.MsgUnknownError:          "Неизвестная ошибка",
		viewer.MsgBackendUnreachable:    "Сервер недоступен",
		viewer.MsgAnsweringUnconfigured: "Ответы ИИ не настроены на сервере",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "YT Transcrição e Perguntas",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyBackendURL:          "URL do Servidor",
		KeyDownloadDirectory:   "Diretório de Download",
		KeyRequestTimeout:      "Tempo limite (segundos, 0 = nenhum)",
		KeyRevealAfterDownload: "Mostrar transcrição salva no gerenciador de arquivos",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyEnterURL:            "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyExtract:             "Extrair Transcrição",
		KeyExtracting:          "Extraindo...",
		KeyExtractingOverlay:   "Extraindo transcrição do YouTube...",
		KeyTranscript:          "Transcrição",
		KeyDownloadTranscript:  "Baixar",
		KeyWatchOnYouTube:      "Assistir no YouTube",
		KeyOpenPlayer:          "Abrir player",
		KeyAskTitle:            "Pergunte sobre este vídeo",
		KeyEnterQuestion:       "Faça uma pergunta sobre o vídeo...",
		KeyAsk:                 "Perguntar à IA",
		KeyThinking:            "Pensando...",
		KeyThinkingOverlay:     "Obtendo resposta da IA...",
		KeySuggestSummary:      "Resuma este vídeo",
		KeySuggestKeyPoints:    "Quais são os pontos principais?",
		KeySuggestConclusion:   "Qual é a conclusão principal?",
		KeyAnswer:              "Resposta",
		KeyHistory:             "Histórico do Chat",
		KeyClearHistory:        "Limpar",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",

		viewer.MsgPleaseEnterURL:        "Por favor, digite uma URL do YouTube",
		viewer.MsgPleaseEnterQuestion:   "Por favor, digite uma pergunta",
		viewer.MsgExtractFirst:          "Extraia uma transcrição primeiro",
		viewer.MsgTranscriptExtracted:   "Transcrição extraída com sucesso!",
		viewer.MsgAnswerReceived:        "Resposta recebida!",
		viewer.MsgHistoryCleared:        "Histórico do chat limpo",
		viewer.MsgNoTranscriptDownload:  "Nenhuma transcrição para baixar",
		viewer.MsgTranscriptDownloaded:  "Transcrição baixada!",
		viewer.MsgDownloadFailed:        "Falha no download",
		viewer.MsgErrorPrefix:           "Erro: ",
		viewer.MsgUnknownError:          "Ocorreu um erro desconhecido",
		viewer.MsgBackendUnreachable:    "Servidor inacessível",
		viewer.MsgAnsweringUnconfigured: "As respostas de IA não estão configuradas no servidor",
	}
}
